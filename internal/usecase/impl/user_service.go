// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	cfg               *config.Config
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Config            *config.Config
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		cfg:               params.Config,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// rolesFor grants the customer role to everyone and the admin role to configured emails.
func (srv *userService) rolesFor(email string) entity.Roles {
	roles := entity.Roles{entity.RoleCustomer}
	if srv.cfg != nil && srv.cfg.IsAdminEmail(email) {
		roles = append(roles, entity.RoleAdmin)
	}

	return roles
}

// RegisterUser orchestrates the complete customer registration process and signs the new account in.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			Name:  strings.TrimSpace(input.Name),
			Email: email,
			Roles: srv.rolesFor(email),
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		output, err = srv.issueSession(ctx, repoFactory, newUser)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", output.User.ID))

	return output, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.loadLoginAuth(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loggedInUser, err := repoFactory.UserRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		if err := srv.syncAdminRole(ctx, repoFactory.UserRepo(), loggedInUser); err != nil {
			return err
		}

		output, err = srv.issueSession(ctx, repoFactory, loggedInUser)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", output.User.ID))

	return output, nil
}

func (srv *userService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findAuthErr error
		authRecord, findAuthErr = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.WithStack(domainerrors.ErrInvalidCredentials)
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login auth transaction")
	}

	return authRecord, nil
}

// syncAdminRole grants the admin role to accounts whose email was added to the admin list
// after they registered.
func (srv *userService) syncAdminRole(ctx context.Context, userRepo repository.UserRepository, user *entity.User) error {
	if user.IsAdmin() || srv.cfg == nil || !srv.cfg.IsAdminEmail(user.Email) {
		return nil
	}

	user.Roles = append(user.Roles, entity.RoleAdmin)
	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to grant admin role")
	}
	srv.log(ctx).Info("Granted admin role", slog.Any("userID", user.ID))

	return nil
}

// issueSession generates the token pair and stores the refresh token, enforcing the session cap.
func (srv *userService) issueSession(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, repoFactory, user.ID, refreshTokenString); err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// storeRefreshToken stores the refresh token in the database
func (srv *userService) storeRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshTokenString string) error {
	refreshRepo := repoFactory.RefreshTokenRepo()

	if srv.maxActiveSessions > 0 {
		if err := repoFactory.UserRepo().AcquireSessionMutex(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row for session limit check")
		}

		if err := refreshRepo.DeleteExpiredRefreshTokens(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete expired sessions")
		}

		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken handles the process of issuing a new access token using a refresh token.
// The refresh token remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	var newAccessToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if time.Now().After(stored.ExpiresAt) {
			return errors.WithStack(domainerrors.ErrRefreshTokenExpired)
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GoogleLogin handles the user login or registration via Google Sign-In.
func (srv *userService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify Google ID token")
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}

		if err := srv.syncAdminRole(ctx, repoFactory.UserRepo(), user); err != nil {
			return err
		}

		output, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Google sign-in failed", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute Google user authentication transaction")
	}

	return output, nil
}

// findOrCreateGoogleUser resolves the account behind a Google identity. A verified Google
// email that matches an existing account links the identity to that account.
func (srv *userService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user by id for google auth")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !oauthUser.EmailVerified {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("google email is not verified")
		}
		srv.log(ctx).Info("Linking Google account to existing user", slog.Any("userID", user.ID))
	case errors.Is(err, domainerrors.ErrUserNotFound):
		srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", email))

		user = &entity.User{
			Name:  oauthUser.Name,
			Email: email,
			Roles: srv.rolesFor(email),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for Google authentication")
		}
	default:
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	newAuth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	return user, nil
}

// Me returns the signed-in user's account.
func (srv *userService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
