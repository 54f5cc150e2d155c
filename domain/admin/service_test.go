package admin

import (
	"context"
	"testing"
	"time"

	"github.com/arrahmanlabs/waitlist-api/internal/log"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestService(password string, ttl time.Duration) AdminService {
	return NewAdminService(log.NewLoggerWithJSONOutput(), NewMemorySessionStore(), password, ttl)
}

func TestAdminService_Login(t *testing.T) {
	t.Run("correct password mints a live session", func(t *testing.T) {
		service := newTestService("hunter2", 0)

		token, err := service.Login(context.Background(), "hunter2")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		authenticated, err := service.IsAuthenticated(context.Background(), token)
		assert.NoError(t, err)
		assert.True(t, authenticated)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		service := newTestService("hunter2", 0)

		token, err := service.Login(context.Background(), "hunter3")

		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.GetErrorType(err))
	})

	t.Run("every login is rejected when no password is configured", func(t *testing.T) {
		service := newTestService("", 0)

		token, err := service.Login(context.Background(), "")

		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("each login mints a distinct token", func(t *testing.T) {
		service := newTestService("hunter2", 0)

		first, err := service.Login(context.Background(), "hunter2")
		assert.NoError(t, err)
		second, err := service.Login(context.Background(), "hunter2")
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestAdminService_Logout(t *testing.T) {
	service := newTestService("hunter2", 0)

	token, err := service.Login(context.Background(), "hunter2")
	assert.NoError(t, err)

	assert.NoError(t, service.Logout(context.Background(), token))

	authenticated, err := service.IsAuthenticated(context.Background(), token)
	assert.NoError(t, err)
	assert.False(t, authenticated)

	// Logging out again, or with a token that never existed, is a no-op.
	assert.NoError(t, service.Logout(context.Background(), token))
	assert.NoError(t, service.Logout(context.Background(), ""))
}

func TestAdminService_IsAuthenticated(t *testing.T) {
	service := newTestService("hunter2", 0)

	authenticated, err := service.IsAuthenticated(context.Background(), "")
	assert.NoError(t, err)
	assert.False(t, authenticated)

	authenticated, err = service.IsAuthenticated(context.Background(), "not-a-session")
	assert.NoError(t, err)
	assert.False(t, authenticated)
}

func TestAdminService_SessionExpiry(t *testing.T) {
	service := newTestService("hunter2", 20*time.Millisecond)

	token, err := service.Login(context.Background(), "hunter2")
	assert.NoError(t, err)

	authenticated, err := service.IsAuthenticated(context.Background(), token)
	assert.NoError(t, err)
	assert.True(t, authenticated)

	time.Sleep(40 * time.Millisecond)

	authenticated, err = service.IsAuthenticated(context.Background(), token)
	assert.NoError(t, err)
	assert.False(t, authenticated)
}
