package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the domain.AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication persists a new authentication method record.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthenticationDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("authentication method already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required authentication information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	// Update the entity with generated values
	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

// FindAuthentication retrieves an authentication record by its provider and provider-specific ID.
func (repo *authRepository) FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&authM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAuthenticationDomain(&authM), nil
}

// --- Mapper Functions ---

// toAuthenticationDomain converts a GORM AuthenticationModel to a domain Authentication entity.
func toAuthenticationDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

// fromAuthenticationDomain converts a domain Authentication entity to a GORM AuthenticationModel.
func fromAuthenticationDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
	}
}
