// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves registration, sign-in and session endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a refresh token for refresh and logout
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// GoogleLoginRequest carries the ID token issued by Google Sign-In
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// AuthResponse is returned after every successful sign-in
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
}

func newAuthResponse(output *usecase.LoginOutput) *AuthResponse {
	return &AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
	}
}

// Register handles account creation
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newAuthResponse(output))
}

// Login handles email and password sign-in
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newAuthResponse(output))
}

// RefreshToken exchanges a refresh token for a new access token
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"accessToken": output.AccessToken})
}

// Logout ends the session of the given refresh token
func (h *UserHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.userUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Successfully logged out"})
}

// GoogleLogin signs in with a Google ID token
func (h *UserHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid Google sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.userUC.GoogleLogin(c.Request().Context(), &usecase.GoogleLoginInput{IDToken: req.IDToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newAuthResponse(output))
}

// Me returns the signed-in account
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.Me(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
