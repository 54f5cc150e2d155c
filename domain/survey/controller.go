package survey

import (
	"github.com/arrahmanlabs/waitlist-api/config/router"
)

func NewSurveyController() *router.RESTController {
	return router.NewVersionedRESTController(
		"SurveyController",
		"api",
		"/survey",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddGetHandler(c, nil, "/form", getFormHandler())
		},
	)
}

func getFormHandler() router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		return router.OKResult(Form(), "Survey form retrieved successfully")
	}
}
