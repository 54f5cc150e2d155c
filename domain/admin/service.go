package admin

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/arrahmanlabs/waitlist-api/internal/log"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
	"github.com/arrahmanlabs/waitlist-api/pkg/utils"
	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an admin session stays valid without an
// explicit logout.
const DefaultSessionTTL = 24 * time.Hour

type AdminService interface {
	// Login checks the shared admin password and, when correct, mints an
	// opaque session token.
	Login(ctx context.Context, password string) (string, error)

	// Logout invalidates a session token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error

	// IsAuthenticated reports whether a token names a live session.
	IsAuthenticated(ctx context.Context, token string) (bool, error)
}

type adminService struct {
	logger       *log.Logger
	store        SessionStore
	passwordHash [sha256.Size]byte
	configured   bool
	sessionTTL   time.Duration
}

func NewAdminService(logger *log.Logger, store SessionStore, password string, sessionTTL time.Duration) AdminService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	service := &adminService{
		logger:     logger,
		store:      store,
		sessionTTL: sessionTTL,
	}

	if password != "" {
		service.passwordHash = sha256.Sum256([]byte(password))
		service.configured = true
	} else {
		logger.Warn("ADMIN_PASSWORD not set; admin endpoints will reject every login")
	}

	return service
}

// NewAdminServiceFromEnv reads ADMIN_PASSWORD and SESSION_TTL and backs the
// session store with the cache when one is configured.
func NewAdminServiceFromEnv(logger *log.Logger, cache Cache) AdminService {
	var store SessionStore
	if cache != nil {
		store = NewCacheSessionStore(cache)
	} else {
		store = NewMemorySessionStore()
	}

	sessionTTL := DefaultSessionTTL
	if raw := utils.GetEnvTrimmed("SESSION_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			sessionTTL = parsed
		} else {
			logger.Warn("Invalid SESSION_TTL; using default", "value", raw)
		}
	}

	return NewAdminService(logger, store, utils.GetEnvTrimmed("ADMIN_PASSWORD"), sessionTTL)
}

func (s *adminService) Login(ctx context.Context, password string) (string, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if !s.configured {
		return "", apperrors.NewUnauthorizedError("admin access is not configured", nil)
	}

	// Hashing both sides keeps the comparison constant time regardless of
	// password length.
	attempt := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(attempt[:], s.passwordHash[:]) != 1 {
		logger.Warn("Admin login rejected")
		return "", apperrors.NewUnauthorizedError("invalid password", nil)
	}

	token := uuid.New().String()

	if err := s.store.Create(ctx, token, s.sessionTTL); err != nil {
		logger.Error("Failed to store admin session", "error", err)
		return "", apperrors.NewInternalServerError("unable to create session", err)
	}

	logger.Info("Admin login accepted")
	return token, nil
}

func (s *adminService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}

	if err := s.store.Delete(ctx, token); err != nil {
		logger := log.GetLoggerInstanceFromContext(ctx, s.logger)
		logger.Error("Failed to delete admin session", "error", err)
		return apperrors.NewInternalServerError("unable to delete session", err)
	}

	return nil
}

func (s *adminService) IsAuthenticated(ctx context.Context, token string) (bool, error) {
	if strings.TrimSpace(token) == "" {
		return false, nil
	}

	exists, err := s.store.Exists(ctx, token)
	if err != nil {
		logger := log.GetLoggerInstanceFromContext(ctx, s.logger)
		logger.Error("Failed to check admin session", "error", err)
		return false, apperrors.NewInternalServerError("unable to check session", err)
	}

	return exists, nil
}
