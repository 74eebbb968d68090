package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerSessionUser(t *testing.T, userService usecase.UserUsecase) *usecase.LoginOutput {
	t.Helper()

	output, err := userService.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:     "Session User",
		Email:    "sessions@example.com",
		Password: "long-password",
	})
	require.NoError(t, err)

	return output
}

func loginSessionUser(userService usecase.UserUsecase) (*usecase.LoginOutput, error) {
	return userService.Login(context.Background(), &usecase.LoginInput{
		Email:    "sessions@example.com",
		Password: "long-password",
	})
}

func TestUserService_Login_SessionLimitSequential(t *testing.T) {
	store := newMemStore()
	userService := newMemUserService(store, &testOAuthService{}, 2)

	registered := registerSessionUser(t, userService)

	_, err := loginSessionUser(userService)
	require.NoError(t, err)

	_, err = loginSessionUser(userService)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
	assert.Equal(t, 2, store.activeSessions(registered.User.ID))
	assert.Equal(t, int64(3), store.lockCalls.Load())
}

func TestUserService_Login_SessionLimitFreedByLogout(t *testing.T) {
	store := newMemStore()
	userService := newMemUserService(store, &testOAuthService{}, 1)

	registered := registerSessionUser(t, userService)

	_, err := loginSessionUser(userService)
	require.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))

	require.NoError(t, userService.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: registered.RefreshToken}))

	_, err = loginSessionUser(userService)
	require.NoError(t, err)
}

func TestUserService_Login_SessionLimitIgnoresExpiredSessions(t *testing.T) {
	store := newMemStore()
	userService := newMemUserService(store, &testOAuthService{}, 1)

	registered := registerSessionUser(t, userService)
	require.NoError(t, userService.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: registered.RefreshToken}))

	require.NoError(t, store.RefreshTokenRepo().CreateRefreshToken(context.Background(), &entity.RefreshToken{
		UserID:    registered.User.ID,
		TokenHash: "expired-hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := loginSessionUser(userService)
	require.NoError(t, err)
	assert.Equal(t, 1, store.activeSessions(registered.User.ID))
}

func TestUserService_Login_SessionLimitConcurrent(t *testing.T) {
	const (
		maxSessions = 3
		attempts    = 10
	)

	store := newMemStore()
	userService := newMemUserService(store, &testOAuthService{}, maxSessions)
	registered := registerSessionUser(t, userService)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
		limited   atomic.Int64
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := loginSessionUser(userService)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domainerrors.ErrSessionLimitExceeded):
				limited.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(maxSessions-1), succeeded.Load())
	assert.Equal(t, int64(attempts-maxSessions+1), limited.Load())
	assert.Equal(t, maxSessions, store.activeSessions(registered.User.ID))
}

func TestUserService_Login_NoSessionLimitSkipsLock(t *testing.T) {
	store := newMemStore()
	userService := newMemUserService(store, &testOAuthService{}, 0)

	registerSessionUser(t, userService)
	for range 3 {
		_, err := loginSessionUser(userService)
		require.NoError(t, err)
	}

	assert.Zero(t, store.lockCalls.Load())
}
