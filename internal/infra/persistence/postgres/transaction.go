// Package postgres contains the concrete implementation of the persistence layer using GORM.
// PostgreSQL is the production backend; the same repositories run on SQLite for local development and tests.
package postgres

import (
	"context"

	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/domain/repository"
	"advisor/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) CatalogRepo() repository.CatalogRepository {
	return NewCatalogRepository(f.tx)
}

func (f *gormRepositoryFactory) ResponseRepo() repository.ResponseRepository {
	return NewResponseRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.MarkWrap(tx.Error, domainerrors.ErrStorageUnavailable, "failed to begin transaction")
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// The business error is more meaningful than the rollback failure.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.MarkWrap(err, domainerrors.ErrStorageUnavailable, "failed to commit transaction")
	}

	return nil
}
