package sqlite

import (
	"context"

	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/repository"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const dishColumns = "id, name, recipe, cooking_time, price"

// dishRepository implements the repository.DishRepository interface.
type dishRepository struct {
	exec *Executor
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{exec: NewExecutor(db)}
}

func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)
	if err := repo.exec.Create(ctx, dishM); err != nil {
		return err
	}

	dish.ID = dishM.ID

	return nil
}

func (repo *dishRepository) FindByID(ctx context.Context, id int64) (*entity.Dish, error) {
	var dishM model.DishModel
	if err := repo.exec.ReadOne(ctx, &dishM, "SELECT "+dishColumns+" FROM dishes WHERE id = ? LIMIT 1", id); err != nil {
		return nil, notFoundAs(err, repository.ErrDishNotFound)
	}

	return toDishDomain(&dishM), nil
}

// FindByNames resolves names case-insensitively through the name_key column,
// which is folded in Go so non-ASCII letters match. When two dishes differ only
// by case the older one wins.
func (repo *dishRepository) FindByNames(ctx context.Context, names []string) (map[string]*entity.Dish, error) {
	found := make(map[string]*entity.Dish, len(names))
	if len(names) == 0 {
		return found, nil
	}

	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, entity.DishNameKey(name))
	}

	dishes, err := repo.findMany(ctx,
		"SELECT "+dishColumns+" FROM dishes WHERE name_key IN ? ORDER BY id", keys)
	if err != nil {
		return nil, err
	}

	for _, dish := range dishes {
		key := entity.DishNameKey(dish.Name)
		if _, ok := found[key]; !ok {
			found[key] = dish
		}
	}

	return found, nil
}

func (repo *dishRepository) FindAll(ctx context.Context) ([]*entity.Dish, error) {
	return repo.findMany(ctx, "SELECT "+dishColumns+" FROM dishes ORDER BY name, id")
}

// Search matches term as a substring of the name or the recipe.
func (repo *dishRepository) Search(ctx context.Context, term string) ([]*entity.Dish, error) {
	pattern := likePattern(term)

	return repo.findMany(ctx,
		"SELECT "+dishColumns+" FROM dishes WHERE name LIKE ? OR recipe LIKE ? ORDER BY name, id",
		pattern, pattern)
}

func (repo *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	res, err := repo.exec.Write(ctx,
		"UPDATE dishes SET name = ?, name_key = ?, recipe = ?, cooking_time = ?, price = ? WHERE id = ?",
		dish.Name, entity.DishNameKey(dish.Name), dish.Recipe, dish.CookingTime, dish.Price, dish.ID)
	if err != nil {
		return err
	}

	return requireAffected(res, repository.ErrDishNotFound)
}

// Delete removes a dish and its recipe requirements. Dishes already ordered cannot be deleted.
func (repo *dishRepository) Delete(ctx context.Context, id int64) error {
	res, err := repo.exec.Write(ctx, "DELETE FROM dishes WHERE id = ?", id)
	if err != nil {
		return err
	}

	return requireAffected(res, repository.ErrDishNotFound)
}

// SetRequirement upserts the per-portion quantity of one ingredient.
func (repo *dishRepository) SetRequirement(ctx context.Context, requirement *entity.DishRequirement) error {
	_, err := repo.exec.Write(ctx,
		`INSERT INTO dish_ingredients (dish_id, ingredient_id, quantity) VALUES (?, ?, ?)
		ON CONFLICT (dish_id, ingredient_id) DO UPDATE SET quantity = excluded.quantity`,
		requirement.DishID, requirement.IngredientID, requirement.Quantity)

	return err
}

func (repo *dishRepository) FindRequirements(ctx context.Context, dishIDs []int64) ([]*entity.DishRequirement, error) {
	if len(dishIDs) == 0 {
		return []*entity.DishRequirement{}, nil
	}

	var requirementModels []*model.DishIngredientModel
	if err := repo.exec.ReadMany(ctx, &requirementModels,
		`SELECT dish_id, ingredient_id, quantity FROM dish_ingredients
		WHERE dish_id IN ? ORDER BY dish_id, ingredient_id`, dishIDs); err != nil {
		return nil, err
	}

	requirements := make([]*entity.DishRequirement, 0, len(requirementModels))
	for _, requirementM := range requirementModels {
		requirements = append(requirements, &entity.DishRequirement{
			DishID:       requirementM.DishID,
			IngredientID: requirementM.IngredientID,
			Quantity:     requirementM.Quantity,
		})
	}

	return requirements, nil
}

func (repo *dishRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Dish, error) {
	var dishModels []*model.DishModel
	if err := repo.exec.ReadMany(ctx, &dishModels, query, args...); err != nil {
		return nil, err
	}

	dishes := make([]*entity.Dish, 0, len(dishModels))
	for _, dishM := range dishModels {
		dishes = append(dishes, toDishDomain(dishM))
	}

	return dishes, nil
}

func toDishDomain(data *model.DishModel) *entity.Dish {
	return &entity.Dish{
		ID:          data.ID,
		Name:        data.Name,
		Recipe:      data.Recipe,
		CookingTime: data.CookingTime,
		Price:       data.Price,
	}
}

func fromDishDomain(data *entity.Dish) *model.DishModel {
	return &model.DishModel{
		ID:          data.ID,
		Name:        data.Name,
		NameKey:     entity.DishNameKey(data.Name),
		Recipe:      data.Recipe,
		CookingTime: data.CookingTime,
		Price:       data.Price,
	}
}
