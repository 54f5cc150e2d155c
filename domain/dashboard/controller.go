package dashboard

import (
	"net/http"

	"github.com/arrahmanlabs/waitlist-api/config/router"
	"github.com/arrahmanlabs/waitlist-api/domain/analytics"
)

// NewDashboardController serves the server-rendered admin dashboard. The
// page writes raw HTML, so it bypasses the JSON envelope.
func NewDashboardController(
	service analytics.AnalyticsService,
	requireAdmin router.MiddlewareFunc,
) *router.RESTController {

	return router.NewRESTController(
		"DashboardController",
		"/admin/dashboard",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddRawGetHandler(c, nil, "", dashboardPageHandler(service), requireAdmin)
		},
	)
}

func dashboardPageHandler(service analytics.AnalyticsService) router.MiddlewareFunc {
	return func(ctx *router.RequestContext) {
		logger := router.GetLogger(ctx)

		summary, err := service.ComputeAnalytics(ctx.Request.Context())
		if err != nil {
			logger.Error("Failed to compute analytics for dashboard", "error", err)
			ctx.JSON(http.StatusInternalServerError, router.InternalServerErrorResult("Unable to load dashboard data").ToJSON())
			return
		}

		ctx.Header("Content-Type", "text/html; charset=utf-8")
		ctx.Status(http.StatusOK)

		if err := RenderPage(ctx.Writer, summary); err != nil {
			logger.Error("Failed to render dashboard page", "error", err)
		}
	}
}
