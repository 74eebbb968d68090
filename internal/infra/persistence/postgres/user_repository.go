package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by their ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by their email address. Emails compare case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves the mutable fields of a user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":  user.Name,
			"roles": pq.StringArray(user.Roles.ToStrings()),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// AcquireSessionMutex locks the user's row until the surrounding transaction ends.
func (repo *userRepository) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to lock user")
	}

	return nil
}

// Count returns the number of users holding the customer role.
func (repo *userRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("? = ANY(roles)", string(entity.RoleCustomer)).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	return int(count), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Roles:     entity.RolesFromStrings(data.Roles),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	roles := data.Roles
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleCustomer}
	}

	return &model.UserModel{
		ID:    data.ID,
		Email: strings.ToLower(strings.TrimSpace(data.Email)),
		Name:  data.Name,
		Roles: roles.ToStrings(),
	}
}
