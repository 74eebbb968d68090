package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service           usecase.UserUsecase
	txManager         *mockRepo.MockTransactionManager
	userRepo          *mockRepo.MockUserRepository
	refreshTokenRepo  *mockRepo.MockRefreshTokenRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)

	userService := NewUserService(UserServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		RefreshTokenRepo:  refreshTokenRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		Config:            newTestConfig(0, "owner@shop.test"),
		Logger:            newDiscardLogger(),
	})

	return userServiceFixtures{
		service:           userService,
		txManager:         txManager,
		userRepo:          userRepo,
		refreshTokenRepo:  refreshTokenRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     " Test User ",
		Email:    "Test@Example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
					return auth.PasswordHash == "hashed_password" && auth.ProviderUserID == "test@example.com"
				})).
				Return(nil)

			fx.tokenService.EXPECT().
				GenerateTokens(mock.Anything, []string{string(entity.RoleCustomer)}).
				Return("access", "refresh", nil)
			fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
			fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)

			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
					return token.TokenHash == "refresh-hash"
				})).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "Test User", output.User.Name)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.False(t, output.User.IsAdmin())
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	weak := errors.New("password too short")
	fx.hasher.EXPECT().ValidatePasswordStrength("abc").Return(weak)

	output, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "a@b.test", Password: "abc"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, weak)
}

func TestUserService_RegisterUser_AlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test User", Email: "test@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New(), Provider: entity.ProviderTypeEmail}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
				Return(nil, repository.ErrAuthNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		PasswordHash: "hashed",
		Provider:     entity.ProviderTypeEmail,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
				Return(authRecord, nil)

			return fn(mockFactory)
		}).
		Once()
	fx.hasher.EXPECT().Check("wrong", authRecord.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateToken("access").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_DeletesEvenWhenTokenInvalid(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "stale-hash").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"}))
}

func TestUserService_Me(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "me@example.com"}
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.Me(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

// The remaining tests run the service against the in-memory store.

func newMemUserService(store *memStore, oauth *testOAuthService, maxActiveSessions int, adminEmails ...string) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager:         store,
		UserRepo:          store.UserRepo(),
		RefreshTokenRepo:  store.RefreshTokenRepo(),
		Hasher:            &testHasher{},
		TokenService:      newTestTokenService(),
		GoogleAuthService: oauth,
		Config:            newTestConfig(maxActiveSessions, adminEmails...),
		Logger:            newDiscardLogger(),
	})
}

func TestUserService_RegisterThenLogin(t *testing.T) {
	store := newMemStore()
	userService := newMemUserService(store, &testOAuthService{}, 0)
	ctx := context.Background()

	registered, err := userService.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name: "Asha", Email: "asha@example.com", Password: "long-password",
	})
	require.NoError(t, err)

	loggedIn, err := userService.Login(ctx, &usecase.LoginInput{Email: " ASHA@example.com ", Password: "long-password"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEqual(t, registered.RefreshToken, loggedIn.RefreshToken)
	assert.Equal(t, 2, store.activeSessions(registered.User.ID))

	_, err = userService.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name: "Asha again", Email: "asha@example.com", Password: "long-password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_AdminEmailGetsAdminRole(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	output, err := newMemUserService(store, &testOAuthService{}, 0, "owner@shop.test").
		RegisterUser(ctx, &usecase.RegisterUserInput{Name: "Owner", Email: "owner@shop.test", Password: "long-password"})

	require.NoError(t, err)
	assert.True(t, output.User.IsAdmin())
}

func TestUserService_Login_GrantsAdminAddedLater(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	_, err := newMemUserService(store, &testOAuthService{}, 0).
		RegisterUser(ctx, &usecase.RegisterUserInput{Name: "Ops", Email: "ops@shop.test", Password: "long-password"})
	require.NoError(t, err)

	output, err := newMemUserService(store, &testOAuthService{}, 0, "ops@shop.test").
		Login(ctx, &usecase.LoginInput{Email: "ops@shop.test", Password: "long-password"})

	require.NoError(t, err)
	assert.True(t, output.User.IsAdmin())
}

func TestUserService_RefreshAndLogout(t *testing.T) {
	store := newMemStore()
	userService := newMemUserService(store, &testOAuthService{}, 0)
	ctx := context.Background()

	output, err := userService.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name: "Ravi", Email: "ravi@example.com", Password: "long-password",
	})
	require.NoError(t, err)

	refreshed, err := userService.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: output.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, output.AccessToken, refreshed.AccessToken)

	require.NoError(t, userService.Logout(ctx, &usecase.LogoutInput{RefreshToken: output.RefreshToken}))
	assert.Zero(t, store.activeSessions(output.User.ID))

	_, err = userService.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: output.RefreshToken})
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_GoogleLogin_CreatesThenReusesAccount(t *testing.T) {
	store := newMemStore()
	oauth := &testOAuthService{user: &service.OAuthUser{
		ID: "google-123", Email: "Maya@Example.com", Name: "Maya", Provider: entity.ProviderTypeGoogle, EmailVerified: true,
	}}
	userService := newMemUserService(store, oauth, 0)
	ctx := context.Background()

	first, err := userService.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, "maya@example.com", first.User.Email)

	second, err := userService.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestUserService_GoogleLogin_LinksVerifiedEmail(t *testing.T) {
	store := newMemStore()
	existing := store.addUser("maya@example.com", "Maya")
	oauth := &testOAuthService{user: &service.OAuthUser{ID: "google-123", Email: "maya@example.com", EmailVerified: true}}

	output, err := newMemUserService(store, oauth, 0).GoogleLogin(context.Background(), &usecase.GoogleLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.User.ID)
}

func TestUserService_GoogleLogin_RefusesUnverifiedEmailMatch(t *testing.T) {
	store := newMemStore()
	store.addUser("maya@example.com", "Maya")
	oauth := &testOAuthService{user: &service.OAuthUser{ID: "google-123", Email: "maya@example.com", EmailVerified: false}}

	output, err := newMemUserService(store, oauth, 0).GoogleLogin(context.Background(), &usecase.GoogleLoginInput{IDToken: "id-token"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_GoogleLogin_InvalidToken(t *testing.T) {
	store := newMemStore()
	oauth := &testOAuthService{err: domainerrors.ErrInvalidCredentials}

	output, err := newMemUserService(store, oauth, 0).GoogleLogin(context.Background(), &usecase.GoogleLoginInput{IDToken: "bad"})

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Zero(t, store.txCalls.Load())
}
