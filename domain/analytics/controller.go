package analytics

import (
	"github.com/arrahmanlabs/waitlist-api/config/router"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
)

// NewAnalyticsController mounts the analytics endpoint under the waitlist
// prefix, where the admin UI expects it.
func NewAnalyticsController(
	service AnalyticsService,
	requireAdmin router.MiddlewareFunc,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"AnalyticsController",
		"api",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddGetHandler(c, nil, "/analytics", getAnalyticsHandler(service), requireAdmin)
		},
	)
}

func getAnalyticsHandler(service AnalyticsService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		summary, err := service.ComputeAnalytics(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(summary, "Analytics computed successfully")
	}
}
