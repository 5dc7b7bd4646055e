package repository

import (
	"context"
	"time"

	"restaurant/internal/domain/entity"
)

// IngredientRepository defines ingredient stock persistence. Stock is never negative.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	FindByID(ctx context.Context, id int64) (*entity.Ingredient, error)

	// FindByIDs returns the ingredients ordered by ascending ID.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Ingredient, error)

	FindAll(ctx context.Context) ([]*entity.Ingredient, error)

	// UpdateStock overwrites the stock level; negative values are rejected.
	UpdateStock(ctx context.Context, id int64, stock float64) error

	Delete(ctx context.Context, id int64) error

	// FindLowStock returns ingredients with stock below threshold, lowest first.
	FindLowStock(ctx context.Context, threshold float64) ([]*entity.Ingredient, error)

	// FindExpired returns ingredients whose expiry is before asOf.
	FindExpired(ctx context.Context, asOf time.Time) ([]*entity.Ingredient, error)

	// DeductStock decrements stock by the required quantity only where enough remains.
	// It returns the ID of the first requirement whose guard did not hold, or 0.
	DeductStock(ctx context.Context, requirements []entity.StockRequirement) (int64, error)
}
