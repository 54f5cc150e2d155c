package waitlist

import (
	"errors"
	"time"

	"github.com/arrahmanlabs/waitlist-api/config/router"
	"github.com/arrahmanlabs/waitlist-api/domain/survey"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
	"github.com/arrahmanlabs/waitlist-api/pkg/factory"
)

// submissionRequestsPerMinute throttles the public intake endpoint harder
// than the global default.
const submissionRequestsPerMinute = 30

func NewWaitlistController(
	service WaitlistService,
	limiters factory.RateLimiterFactory,
	requireAdmin router.MiddlewareFunc,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistController",
		"api",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			submissionLimiter := limiters.CreateRateLimiter(submissionRequestsPerMinute, time.Minute)

			rs.AddPostHandler(c, submissionLimiter, "", submitResponseHandler(service))
			rs.AddGetHandler(c, nil, "/count", countResponsesHandler(service))
			rs.AddGetHandler(c, nil, "/responses", listResponsesHandler(service), requireAdmin)
			rs.AddDeleteHandler(c, nil, "/:id", deleteResponseHandler(service), requireAdmin)
		},
	)
}

func submitResponseHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SubmitWaitlistRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.SubmitResponse(ctx.Request.Context(), &req)
		if err != nil {
			var validationErr *survey.ValidationError
			if errors.As(err, &validationErr) {
				return router.BadRequestResult("Invalid survey submission", validationErr.Fields)
			}

			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Waitlist response")
	}
}

func countResponsesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		count, err := service.CountResponses(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(CountData{Count: count}, "Waitlist count retrieved successfully")
	}
}

func listResponsesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		responses, err := service.ListResponses(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(responses, "Waitlist responses retrieved successfully")
	}
}

func deleteResponseHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		deleted, err := service.DeleteResponse(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		message := "Waitlist response deleted successfully"
		if !deleted {
			message = "Waitlist response was already deleted"
		}

		return router.OKResult(DeleteData{Deleted: deleted}, message)
	}
}
