package waitlist

import (
	"context"
	"time"

	"github.com/arrahmanlabs/waitlist-api/domain/survey"
	"github.com/arrahmanlabs/waitlist-api/internal/log"
	"github.com/arrahmanlabs/waitlist-api/internal/mail"
	"github.com/arrahmanlabs/waitlist-api/internal/models"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
)

// emailSendTimeout bounds the detached send goroutines so a stalled
// SendGrid call cannot pile up forever.
const emailSendTimeout = 30 * time.Second

// AnalyticsInvalidator drops any cached analytics snapshot after the
// underlying data changes.
type AnalyticsInvalidator interface {
	Invalidate(ctx context.Context)
}

type WaitlistService interface {
	// SubmitResponse validates and persists a survey submission. On success
	// the welcome and admin notification emails are dispatched in the
	// background; their outcome never affects the returned result.
	SubmitResponse(ctx context.Context, req *SubmitWaitlistRequest) (*WaitlistResponseItem, error)

	// ListResponses returns every stored response, newest first.
	ListResponses(ctx context.Context) ([]WaitlistResponseItem, error)

	// CountResponses returns the public signup count.
	CountResponses(ctx context.Context) (int64, error)

	// DeleteResponse removes a response and reports whether a row existed.
	// Repeating a delete yields false, never an error.
	DeleteResponse(ctx context.Context, id uint) (bool, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	mailer     mail.EmailService
	analytics  AnalyticsInvalidator
}

func NewWaitlistService(
	logger *log.Logger,
	repository WaitlistRepository,
	mailer mail.EmailService,
	analytics AnalyticsInvalidator,
) WaitlistService {
	return &waitlistService{
		logger:     logger,
		repository: repository,
		mailer:     mailer,
		analytics:  analytics,
	}
}

func (s *waitlistService) SubmitResponse(ctx context.Context, req *SubmitWaitlistRequest) (*WaitlistResponseItem, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("SubmitResponse received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	responseModel := ToWaitlistResponseModel(req)

	if fieldErrors := survey.ValidateResponse(responseModel); len(fieldErrors) > 0 {
		logger.Info("Survey submission rejected", "fields", len(fieldErrors))
		return nil, apperrors.NewInvalidRequestError(
			"survey submission failed validation",
			&survey.ValidationError{Fields: fieldErrors},
		)
	}

	response, err := s.repository.CreateResponse(ctx, responseModel)
	if err != nil {
		logger.Error("Failed to store survey response", "error", err)
		return nil, err
	}

	s.invalidateAnalytics(ctx)
	s.dispatchSubmissionEmails(response)

	item := ToWaitlistResponseItem(response)
	return &item, nil
}

func (s *waitlistService) ListResponses(ctx context.Context) ([]WaitlistResponseItem, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	responses, err := s.repository.GetAllResponses(ctx)
	if err != nil {
		logger.Error("Failed to list survey responses", "error", err)
		return nil, err
	}

	items := make([]WaitlistResponseItem, 0, len(responses))
	for _, response := range responses {
		items = append(items, ToWaitlistResponseItem(response))
	}

	return items, nil
}

func (s *waitlistService) CountResponses(ctx context.Context) (int64, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	count, err := s.repository.CountResponses(ctx)
	if err != nil {
		logger.Error("Failed to count survey responses", "error", err)
		return 0, err
	}

	return count, nil
}

func (s *waitlistService) DeleteResponse(ctx context.Context, id uint) (bool, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("DeleteResponse received invalid ID")
		return false, apperrors.NewInvalidRequestError("invalid response ID", nil)
	}

	deleted, err := s.repository.DeleteResponse(ctx, id)
	if err != nil {
		logger.Error("Failed to delete survey response", "id", id, "error", err)
		return false, err
	}

	if deleted {
		s.invalidateAnalytics(ctx)
	}

	return deleted, nil
}

func (s *waitlistService) invalidateAnalytics(ctx context.Context) {
	if s.analytics != nil {
		s.analytics.Invalidate(ctx)
	}
}

// dispatchSubmissionEmails fires the two post-submission emails without
// blocking the request. The detached context outlives the request on
// purpose: the HTTP response must not wait for SendGrid.
func (s *waitlistService) dispatchSubmissionEmails(response *models.WaitlistResponse) {
	if s.mailer == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
		defer cancel()

		if err := s.mailer.SendWelcome(ctx, response.FullName, response.Email); err != nil {
			s.logger.Error("Failed to send welcome email", "email", response.Email, "error", err)
		}
	}()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
		defer cancel()

		if err := s.mailer.SendAdminAlert(ctx, response); err != nil {
			s.logger.Error("Failed to send admin notification email", "error", err)
		}
	}()
}
