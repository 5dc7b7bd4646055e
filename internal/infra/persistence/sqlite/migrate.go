package sqlite

import (
	"context"

	"restaurant/internal/domain/entity"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, index and constraint of the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return translateError(ctx, err, "migrate schema")
	}

	return backfillDishNameKeys(ctx, NewExecutor(db))
}

// backfillDishNameKeys folds the names of dishes stored before name_key existed.
func backfillDishNameKeys(ctx context.Context, exec *Executor) error {
	var dishModels []*model.DishModel
	if err := exec.ReadMany(ctx, &dishModels, "SELECT id, name FROM dishes WHERE name_key = ''"); err != nil {
		return err
	}

	for _, dishM := range dishModels {
		if _, err := exec.Write(ctx, "UPDATE dishes SET name_key = ? WHERE id = ?",
			entity.DishNameKey(dishM.Name), dishM.ID); err != nil {
			return err
		}
	}

	return nil
}
