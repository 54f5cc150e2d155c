package domain

import (
	"github.com/arrahmanlabs/waitlist-api/config"
	"github.com/arrahmanlabs/waitlist-api/domain/admin"
	"github.com/arrahmanlabs/waitlist-api/domain/analytics"
	"github.com/arrahmanlabs/waitlist-api/domain/backup"
	"github.com/arrahmanlabs/waitlist-api/domain/dashboard"
	"github.com/arrahmanlabs/waitlist-api/domain/monitoring"
	"github.com/arrahmanlabs/waitlist-api/domain/survey"
	"github.com/arrahmanlabs/waitlist-api/domain/waitlist"
	"github.com/arrahmanlabs/waitlist-api/internal/mail"
	"github.com/arrahmanlabs/waitlist-api/pkg/factory"
	"github.com/arrahmanlabs/waitlist-api/pkg/utils"
)

// SetupCoreDomain builds the service graph and mounts every controller.
// The waitlist repository is shared by the intake, analytics and backup
// services so they all see the same store.
func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	logger := appConfig.Logger

	limiters := factory.NewDefaultRateLimiterFactory(appConfig.Cache, logger)
	mailer := mail.NewSendGridServiceFromEnv(logger)

	repository := waitlist.NewWaitlistRepository(appConfig.DB)
	analyticsService := analytics.NewAnalyticsService(logger, repository, appConfig.Cache)
	adminService := admin.NewAdminServiceFromEnv(logger, appConfig.Cache)
	requireAdmin := admin.RequireAdmin(adminService)

	waitlistFactory := waitlist.NewWaitlistServiceFactory(appConfig.DB, logger, mailer, analyticsService, limiters, requireAdmin)
	backupService := backup.NewBackupService(logger, repository, utils.GetEnvTrimmed("BACKUP_DIR"))

	routerService := appConfig.RouterService
	routerService.MountController(monitoring.NewMonitoringControllerFactory(appConfig.DB, logger, appConfig.Cache).CreateController())
	routerService.MountController(waitlistFactory.CreateController())
	routerService.MountController(analytics.NewAnalyticsController(analyticsService, requireAdmin))
	routerService.MountController(admin.NewAdminController(adminService, limiters))
	routerService.MountController(survey.NewSurveyController())
	routerService.MountController(dashboard.NewDashboardController(analyticsService, admin.RequireAdminPage(adminService)))
	routerService.MountController(backup.NewBackupController(backupService, requireAdmin))
}
