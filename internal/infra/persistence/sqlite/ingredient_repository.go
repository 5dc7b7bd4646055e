package sqlite

import (
	"context"
	"time"

	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const ingredientColumns = "id, name, stock, unit, expiry, supplier"

// ingredientRepository implements the repository.IngredientRepository interface.
type ingredientRepository struct {
	exec *Executor
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{exec: NewExecutor(db)}
}

func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)
	if err := repo.exec.Create(ctx, ingredientM); err != nil {
		return err
	}

	ingredient.ID = ingredientM.ID

	return nil
}

func (repo *ingredientRepository) FindByID(ctx context.Context, id int64) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel
	if err := repo.exec.ReadOne(ctx, &ingredientM,
		"SELECT "+ingredientColumns+" FROM ingredients WHERE id = ? LIMIT 1", id); err != nil {
		return nil, notFoundAs(err, repository.ErrIngredientNotFound)
	}

	return toIngredientDomain(&ingredientM), nil
}

func (repo *ingredientRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Ingredient, error) {
	if len(ids) == 0 {
		return []*entity.Ingredient{}, nil
	}

	return repo.findMany(ctx, "SELECT "+ingredientColumns+" FROM ingredients WHERE id IN ? ORDER BY id", ids)
}

func (repo *ingredientRepository) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	return repo.findMany(ctx, "SELECT "+ingredientColumns+" FROM ingredients ORDER BY name, id")
}

func (repo *ingredientRepository) UpdateStock(ctx context.Context, id int64, stock float64) error {
	if stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}

	res, err := repo.exec.Write(ctx, "UPDATE ingredients SET stock = ? WHERE id = ?", entity.RoundQuantity(stock), id)
	if err != nil {
		return err
	}

	return requireAffected(res, repository.ErrIngredientNotFound)
}

// Delete removes an ingredient. Ingredients used by a recipe cannot be deleted.
func (repo *ingredientRepository) Delete(ctx context.Context, id int64) error {
	res, err := repo.exec.Write(ctx, "DELETE FROM ingredients WHERE id = ?", id)
	if err != nil {
		return err
	}

	return requireAffected(res, repository.ErrIngredientNotFound)
}

func (repo *ingredientRepository) FindLowStock(ctx context.Context, threshold float64) ([]*entity.Ingredient, error) {
	return repo.findMany(ctx,
		"SELECT "+ingredientColumns+" FROM ingredients WHERE stock < ? ORDER BY stock, id", threshold)
}

func (repo *ingredientRepository) FindExpired(ctx context.Context, asOf time.Time) ([]*entity.Ingredient, error) {
	return repo.findMany(ctx,
		"SELECT "+ingredientColumns+" FROM ingredients WHERE expiry IS NOT NULL AND expiry < ? ORDER BY expiry, id",
		asOf.UTC())
}

// DeductStock applies each decrement only where enough stock remains. The first
// requirement whose guard fails stops the loop and its ingredient ID is returned;
// the caller's transaction decides whether the earlier decrements survive. The
// remaining stock is rounded so repeated decrements leave no float residue.
func (repo *ingredientRepository) DeductStock(ctx context.Context, requirements []entity.StockRequirement) (int64, error) {
	for _, requirement := range requirements {
		res, err := repo.exec.Write(ctx,
			"UPDATE ingredients SET stock = max(round(stock - ?, ?), 0) WHERE id = ? AND stock + ? >= ?",
			requirement.Quantity, entity.QuantityDecimals, requirement.IngredientID,
			entity.QuantityTolerance, requirement.Quantity)
		if err != nil {
			return 0, err
		}

		if res.RowsAffected == 0 {
			return requirement.IngredientID, nil
		}
	}

	return 0, nil
}

func (repo *ingredientRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel
	if err := repo.exec.ReadMany(ctx, &ingredientModels, query, args...); err != nil {
		return nil, err
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients, nil
}

func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	ingredient := &entity.Ingredient{
		ID:       data.ID,
		Name:     data.Name,
		Stock:    data.Stock,
		Unit:     data.Unit,
		Supplier: data.Supplier,
	}
	if data.Expiry != nil {
		ingredient.Expiry = data.Expiry.UTC()
	}

	return ingredient
}

func fromIngredientDomain(data *entity.Ingredient) *model.IngredientModel {
	ingredientM := &model.IngredientModel{
		ID:       data.ID,
		Name:     data.Name,
		Stock:    entity.RoundQuantity(data.Stock),
		Unit:     data.Unit,
		Supplier: data.Supplier,
	}
	if !data.Expiry.IsZero() {
		expiry := data.Expiry.UTC()
		ingredientM.Expiry = &expiry
	}

	return ingredientM
}
