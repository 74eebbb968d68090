package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUsecase.MockUserUsecase) {
	t.Helper()

	userUC := mockUsecase.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: slog.Default()}), userUC
}

func TestUserHandler_Register(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	user := &entity.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com"}

	userUC.EXPECT().RegisterUser(mock.Anything, &usecase.RegisterUserInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "S3cure!pass",
	}).Return(&usecase.LoginOutput{AccessToken: "at", RefreshToken: "rt", User: user}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Asha","email":"asha@example.com","password":"S3cure!pass"}`))

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"accessToken":"at"`)
	assert.Contains(t, body, `"refreshToken":"rt"`)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	h, userUC := newTestUserHandler(t)

	userUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"asha@example.com","password":"wrong"}`))

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestUserHandler_GoogleLogin_RequiresToken(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/auth/google", strings.NewReader(`{}`))

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Error.Details), `"field":"idToken"`)
}

func TestUserHandler_Me(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	userID := uuid.New()

	userUC.EXPECT().Me(mock.Anything, userID).Return(&entity.User{ID: userID, Email: "asha@example.com"}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/auth/me", nil)
	asUser(c, userID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"asha@example.com"`)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", nil)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}
