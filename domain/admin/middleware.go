package admin

import (
	"net/http"

	"github.com/arrahmanlabs/waitlist-api/config/router"
)

// SessionHeader carries the admin session token on gated requests.
const SessionHeader = "X-Session-Id"

// sessionQueryParam is the fallback transport for browser navigation to the
// dashboard page, where custom headers are not available.
const sessionQueryParam = "session"

// SessionToken extracts the session token from the request header.
func SessionToken(ctx *router.RequestContext) string {
	return ctx.GetHeader(SessionHeader)
}

// pageSessionToken additionally accepts the query fallback. Only browser
// navigation routes use it; JSON endpoints stay header-only so tokens never
// end up in access logs.
func pageSessionToken(ctx *router.RequestContext) string {
	if token := SessionToken(ctx); token != "" {
		return token
	}

	return ctx.Query(sessionQueryParam)
}

// RequireAdmin rejects requests that do not carry a live admin session
// before the gated handler runs. The token travels in the X-Session-Id
// header.
func RequireAdmin(service AdminService) router.MiddlewareFunc {
	return requireSession(service, SessionToken)
}

// RequireAdminPage gates browser-loaded pages, where the token may arrive
// as a "session" query parameter instead of a header.
func RequireAdminPage(service AdminService) router.MiddlewareFunc {
	return requireSession(service, pageSessionToken)
}

func requireSession(service AdminService, token func(*router.RequestContext) string) router.MiddlewareFunc {
	return func(ctx *router.RequestContext) {
		authenticated, err := service.IsAuthenticated(ctx.Request.Context(), token(ctx))
		if err != nil {
			ctx.AbortWithStatusJSON(
				http.StatusInternalServerError,
				router.InternalServerErrorResult("Unable to verify admin session").ToJSON(),
			)
			return
		}

		if !authenticated {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				router.UnauthorizedResult("Admin session required").ToJSON(),
			)
			return
		}

		ctx.Next()
	}
}
