package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refreshTokenRepository implements the domain.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// CreateRefreshToken persists a new refresh token, representing a user session.
func (repo *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
func (repo *refreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
func (repo *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, the token was not found.
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// DeleteRefreshTokensByUserID removes all refresh tokens for a specific user.
func (repo *refreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteExpiredRefreshTokens removes the user's expired refresh tokens.
func (repo *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expires_at < ?", userID, time.Now()).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// CountActiveSessionsByUserID returns the number of non-expired sessions for a user.
func (repo *refreshTokenRepository) CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// --- Mapper Functions ---

// toRefreshTokenDomain converts a GORM RefreshTokenModel to a domain RefreshToken entity.
func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromRefreshTokenDomain converts a domain RefreshToken entity to a GORM RefreshTokenModel.
func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}
