package repository

import (
	"context"

	"restaurant/internal/domain/entity"
)

// DishRepository defines dish and recipe-requirement persistence.
type DishRepository interface {
	// Create persists a new dish and sets its ID.
	Create(ctx context.Context, dish *entity.Dish) error

	// FindByID returns ErrDishNotFound on a miss.
	FindByID(ctx context.Context, id int64) (*entity.Dish, error)

	// FindByNames returns the dishes whose names match case-insensitively,
	// keyed by lower-cased name. Unknown names are simply absent.
	FindByNames(ctx context.Context, names []string) (map[string]*entity.Dish, error)

	// FindAll returns every dish ordered by name.
	FindAll(ctx context.Context) ([]*entity.Dish, error)

	// Search matches term against name or recipe.
	Search(ctx context.Context, term string) ([]*entity.Dish, error)

	Update(ctx context.Context, dish *entity.Dish) error
	Delete(ctx context.Context, id int64) error

	// SetRequirement creates or replaces the per-portion quantity of an ingredient in a dish.
	SetRequirement(ctx context.Context, requirement *entity.DishRequirement) error

	// FindRequirements returns the requirements of all given dishes.
	FindRequirements(ctx context.Context, dishIDs []int64) ([]*entity.DishRequirement, error)
}
