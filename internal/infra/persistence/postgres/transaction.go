// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) AuthRepo() repository.AuthRepository {
	return NewAuthRepository(f.tx)
}

func (f *gormRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *gormRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	return NewCategoryRepository(f.tx)
}

func (f *gormRepositoryFactory) CollectionRepo() repository.CollectionRepository {
	return NewCollectionRepository(f.tx)
}

func (f *gormRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

func (f *gormRepositoryFactory) CartRepo() repository.CartRepository {
	return NewCartRepository(f.tx)
}

func (f *gormRepositoryFactory) WishlistRepo() repository.WishlistRepository {
	return NewWishlistRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) ShippingMethodRepo() repository.ShippingMethodRepository {
	return NewShippingMethodRepository(f.tx)
}

func (f *gormRepositoryFactory) SettingsRepo() repository.SettingsRepository {
	return NewSettingsRepository(f.tx)
}

func (f *gormRepositoryFactory) ContactRepo() repository.ContactRepository {
	return NewContactRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction on the primary.
// Serialization failures and deadlocks surface as domainerrors.ErrTransactionConflict.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// If a panic occurs within the callback function, the transaction is rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		if isRetryableTxError(err) {
			return domainerrors.ErrTransactionConflict.WrapMessage(err.Error())
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		if isRetryableTxError(err) {
			return domainerrors.ErrTransactionConflict.WrapMessage(err.Error())
		}

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
