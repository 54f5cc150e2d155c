package waitlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arrahmanlabs/waitlist-api/domain/survey"
	"github.com/arrahmanlabs/waitlist-api/internal/log"
	"github.com/arrahmanlabs/waitlist-api/internal/models"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type recordingMailer struct {
	welcome chan string
	admin   chan string
	err     error
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{
		welcome: make(chan string, 1),
		admin:   make(chan string, 1),
	}
}

func (m *recordingMailer) SendWelcome(ctx context.Context, fullName, email string) error {
	m.welcome <- email
	return m.err
}

func (m *recordingMailer) SendAdminAlert(ctx context.Context, response *models.WaitlistResponse) error {
	m.admin <- response.Email
	return m.err
}

type recordingInvalidator struct {
	calls int
}

func (i *recordingInvalidator) Invalidate(ctx context.Context) {
	i.calls++
}

func validSubmitRequest() *SubmitWaitlistRequest {
	return &SubmitWaitlistRequest{
		FullName:                "Amina Yusuf",
		Email:                   "amina@example.com",
		Role:                    "student",
		Age:                     "26-35",
		PrayerFrequency:         "5_times_daily",
		ArabicUnderstanding:     "basic",
		UnderstandingDifficulty: "often",
		Importance:              "very_important",
		LearningStruggle:        "understanding_arabic",
		CurrentApproach:         "translation_apps",
		ARExperience:            "some_experience",
		ARInterest:              "very_meaningful",
		Features:                []string{"live_translation", "prayer_times"},
		Likelihood:              "very_likely",
		InterviewWillingness:    "yes_happy_to_help",
		InvestorPresentation:    "maybe_later",
	}
}

func waitForEmail(t *testing.T, ch chan string) string {
	t.Helper()

	select {
	case email := <-ch:
		return email
	case <-time.After(2 * time.Second):
		t.Fatal("expected an email dispatch, none arrived")
		return ""
	}
}

func TestWaitlistService_SubmitResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("successful submission dispatches both emails and invalidates analytics", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		mailer := newRecordingMailer()
		invalidator := &recordingInvalidator{}
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, mailer, invalidator)

		req := validSubmitRequest()

		mockRepo.EXPECT().
			CreateResponse(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.WaitlistResponse) (*models.WaitlistResponse, error) {
				r.ID = 7
				r.CreatedAt = time.Now()
				return r, nil
			})

		result, err := service.SubmitResponse(context.Background(), req)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, uint(7), result.ID)
		assert.Equal(t, req.Email, result.Email)
		assert.Equal(t, req.Features, result.Features)

		assert.Equal(t, req.Email, waitForEmail(t, mailer.welcome))
		assert.Equal(t, req.Email, waitForEmail(t, mailer.admin))
		assert.Equal(t, 1, invalidator.calls)
	})

	t.Run("unknown enum value is rejected before persistence", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, nil, nil)

		req := validSubmitRequest()
		req.Age = "young"

		result, err := service.SubmitResponse(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))

		var validationErr *survey.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "age", validationErr.Fields[0].Field)
	})

	t.Run("too many features is rejected before persistence", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, nil, nil)

		req := validSubmitRequest()
		req.Features = []string{"live_translation", "prayer_times", "qibla_indicator", "hadith_overlay"}

		result, err := service.SubmitResponse(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("repository error surfaces and sends no email", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		mailer := newRecordingMailer()
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, mailer, nil)

		mockRepo.EXPECT().
			CreateResponse(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("database error", errors.New("connection reset")))

		result, err := service.SubmitResponse(context.Background(), validSubmitRequest())

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, mailer.welcome)
		assert.Empty(t, mailer.admin)
	})

	t.Run("email failure never reaches the submitter", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		mailer := newRecordingMailer()
		mailer.err = errors.New("sendgrid unavailable")
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, mailer, nil)

		mockRepo.EXPECT().
			CreateResponse(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.WaitlistResponse) (*models.WaitlistResponse, error) {
				return r, nil
			})

		result, err := service.SubmitResponse(context.Background(), validSubmitRequest())

		assert.NoError(t, err)
		assert.NotNil(t, result)
		waitForEmail(t, mailer.welcome)
		waitForEmail(t, mailer.admin)
	})
}

func TestWaitlistService_DeleteResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deleting an existing row reports true and invalidates analytics", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		invalidator := &recordingInvalidator{}
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, nil, invalidator)

		mockRepo.EXPECT().DeleteResponse(gomock.Any(), uint(4)).Return(true, nil)

		deleted, err := service.DeleteResponse(context.Background(), 4)

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, 1, invalidator.calls)
	})

	t.Run("deleting a missing row reports false without error", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		invalidator := &recordingInvalidator{}
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, nil, invalidator)

		mockRepo.EXPECT().DeleteResponse(gomock.Any(), uint(4)).Return(false, nil)

		deleted, err := service.DeleteResponse(context.Background(), 4)

		assert.NoError(t, err)
		assert.False(t, deleted)
		assert.Equal(t, 0, invalidator.calls)
	})

	t.Run("zero ID is rejected", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, nil, nil)

		deleted, err := service.DeleteResponse(context.Background(), 0)

		assert.Error(t, err)
		assert.False(t, deleted)
	})
}

func TestWaitlistService_ListAndCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("list maps models to items", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, nil, nil)

		stored := []*models.WaitlistResponse{
			{ID: 2, FullName: "Bilal Khan", Email: "bilal@example.com", Features: models.FeatureList{"prayer_times"}},
			{ID: 1, FullName: "Amina Yusuf", Email: "amina@example.com", Features: models.FeatureList{"live_translation"}},
		}

		mockRepo.EXPECT().GetAllResponses(gomock.Any()).Return(stored, nil)

		items, err := service.ListResponses(context.Background())

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, uint(2), items[0].ID)
		assert.Equal(t, "bilal@example.com", items[0].Email)
	})

	t.Run("count passes through", func(t *testing.T) {
		mockRepo := NewMockWaitlistRepository(ctrl)
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, nil, nil)

		mockRepo.EXPECT().CountResponses(gomock.Any()).Return(int64(42), nil)

		count, err := service.CountResponses(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(42), count)
	})
}
