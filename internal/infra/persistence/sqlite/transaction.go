package sqlite

import (
	"context"
	"database/sql"

	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"
	"restaurant/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	return NewCustomerRepository(f.tx)
}

func (f *gormRepositoryFactory) EmployeeRepo() repository.EmployeeRepository {
	return NewEmployeeRepository(f.tx)
}

func (f *gormRepositoryFactory) DishRepo() repository.DishRepository {
	return NewDishRepository(f.tx)
}

func (f *gormRepositoryFactory) IngredientRepo() repository.IngredientRepository {
	return NewIngredientRepository(f.tx)
}

func (f *gormRepositoryFactory) ShipperRepo() repository.ShipperRepository {
	return NewShipperRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) BillRepo() repository.BillRepository {
	return NewBillRepository(f.tx)
}

func (f *gormRepositoryFactory) DeliveryRepo() repository.DeliveryRepository {
	return NewDeliveryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction. An error or panic from fn,
// or a context that expires before commit, rolls everything back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translateError(ctx, tx.Error, "begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if ctx.Err() != nil {
		tx.Rollback()

		return domainerrors.ErrTimeout.WithDetails("commit: " + ctx.Err().Error())
	}

	if err := tx.Commit().Error; err != nil {
		return translateError(ctx, errors.Wrap(err, "failed to commit transaction"), "commit")
	}

	return nil
}
