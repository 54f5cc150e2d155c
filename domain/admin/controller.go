package admin

import (
	"time"

	"github.com/arrahmanlabs/waitlist-api/config/router"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
	"github.com/arrahmanlabs/waitlist-api/pkg/factory"
)

// loginRequestsPerMinute keeps password guessing slow.
const loginRequestsPerMinute = 10

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginData struct {
	SessionID string `json:"sessionId"`
}

type StatusData struct {
	Authenticated bool `json:"authenticated"`
}

func NewAdminController(
	service AdminService,
	limiters factory.RateLimiterFactory,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"AdminController",
		"api",
		"/admin",
		func(rs *router.RouterService, c *router.RESTController) {
			loginLimiter := limiters.CreateRateLimiter(loginRequestsPerMinute, time.Minute)

			rs.AddPostHandler(c, loginLimiter, "/login", loginHandler(service))
			rs.AddPostHandler(c, nil, "/logout", logoutHandler(service))
			rs.AddGetHandler(c, nil, "/status", statusHandler(service))
		},
	)
}

func loginHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req LoginRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			return router.BadRequestResult("Invalid request body", nil)
		}

		token, err := service.Login(ctx.Request.Context(), req.Password)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(LoginData{SessionID: token}, "Login successful")
	}
}

func logoutHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		if err := service.Logout(ctx.Request.Context(), SessionToken(ctx)); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Logged out")
	}
}

func statusHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		authenticated, err := service.IsAuthenticated(ctx.Request.Context(), SessionToken(ctx))
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(StatusData{Authenticated: authenticated}, "Session status retrieved successfully")
	}
}
