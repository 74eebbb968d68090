// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// AcquireSessionMutex takes a row lock on the user for the rest of the transaction,
	// serialising concurrent logins of the same account.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error

	// Count returns the number of registered users.
	Count(ctx context.Context) (int, error)
}
