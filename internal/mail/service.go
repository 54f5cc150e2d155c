package mail

import (
	"context"
	"fmt"

	"github.com/arrahmanlabs/waitlist-api/internal/log"
	"github.com/arrahmanlabs/waitlist-api/internal/models"
	"github.com/arrahmanlabs/waitlist-api/pkg/utils"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends the two transactional emails that follow a survey
// submission. Callers invoke these from goroutines after the row is
// committed; a send failure is logged and never reaches the submitter.
type EmailService interface {
	// SendWelcome emails the submitter a confirmation of their waitlist spot.
	SendWelcome(ctx context.Context, fullName, email string) error

	// SendAdminAlert notifies the admin address about a new submission.
	SendAdminAlert(ctx context.Context, response *models.WaitlistResponse) error
}

type Config struct {
	APIKey     string
	FromEmail  string
	FromName   string
	AdminEmail string
}

func NewConfigFromEnv() *Config {
	return &Config{
		APIKey:     utils.GetEnvTrimmed("SENDGRID_API_KEY"),
		FromEmail:  utils.GetEnvTrimmedOrDefault("FROM_EMAIL", "noreply@arrahman.app"),
		FromName:   utils.GetEnvTrimmedOrDefault("FROM_NAME", "AR Rahman"),
		AdminEmail: utils.GetEnvTrimmed("ADMIN_EMAIL"),
	}
}

// IsConfigured reports whether an API key is present. Without one the
// service degrades to a no-op so local development works without SendGrid.
func (c *Config) IsConfigured() bool {
	return c.APIKey != ""
}

type sendGridService struct {
	config *Config
	client *sendgrid.Client
	logger *log.Logger
}

func NewSendGridService(config *Config, logger *log.Logger) EmailService {
	var client *sendgrid.Client
	if config.IsConfigured() {
		client = sendgrid.NewSendClient(config.APIKey)
	} else {
		logger.Info("SENDGRID_API_KEY not set; transactional emails are disabled")
	}

	return &sendGridService{
		config: config,
		client: client,
		logger: logger,
	}
}

func NewSendGridServiceFromEnv(logger *log.Logger) EmailService {
	return NewSendGridService(NewConfigFromEnv(), logger)
}

func (s *sendGridService) SendWelcome(ctx context.Context, fullName, email string) error {
	if s.client == nil {
		return nil
	}

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.config.FromName, s.config.FromEmail),
		"Welcome to the AR Rahman waitlist",
		sgmail.NewEmail(fullName, email),
		welcomePlainBody(fullName),
		welcomeHTMLBody(fullName),
	)

	return s.send(ctx, message)
}

func (s *sendGridService) SendAdminAlert(ctx context.Context, response *models.WaitlistResponse) error {
	if s.client == nil {
		return nil
	}

	if s.config.AdminEmail == "" {
		s.logger.Warn("ADMIN_EMAIL not set; skipping admin notification")
		return nil
	}

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.config.FromName, s.config.FromEmail),
		fmt.Sprintf("New waitlist submission from %s", response.FullName),
		sgmail.NewEmail("", s.config.AdminEmail),
		adminAlertPlainBody(response),
		adminAlertHTMLBody(response),
	)

	return s.send(ctx, message)
}

func (s *sendGridService) send(ctx context.Context, message *sgmail.SGMailV3) error {
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}
