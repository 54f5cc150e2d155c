package waitlist

import (
	"github.com/arrahmanlabs/waitlist-api/config/router"
	"github.com/arrahmanlabs/waitlist-api/internal/log"
	"github.com/arrahmanlabs/waitlist-api/internal/mail"
	"github.com/arrahmanlabs/waitlist-api/pkg/factory"
	"gorm.io/gorm"
)

type WaitlistServiceFactory interface {
	CreateRepository() WaitlistRepository
	CreateService() WaitlistService
	CreateController() *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	db           *gorm.DB
	logger       *log.Logger
	mailer       mail.EmailService
	analytics    AnalyticsInvalidator
	limiters     factory.RateLimiterFactory
	requireAdmin router.MiddlewareFunc
}

func NewWaitlistServiceFactory(
	db *gorm.DB,
	logger *log.Logger,
	mailer mail.EmailService,
	analytics AnalyticsInvalidator,
	limiters factory.RateLimiterFactory,
	requireAdmin router.MiddlewareFunc,
) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		db:           db,
		logger:       logger,
		mailer:       mailer,
		analytics:    analytics,
		limiters:     limiters,
		requireAdmin: requireAdmin,
	}
}

func (f *DefaultWaitlistServiceFactory) CreateRepository() WaitlistRepository {
	return NewWaitlistRepository(f.db)
}

func (f *DefaultWaitlistServiceFactory) CreateService() WaitlistService {
	return NewWaitlistService(f.logger, f.CreateRepository(), f.mailer, f.analytics)
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.CreateService(), f.limiters, f.requireAdmin)
}
