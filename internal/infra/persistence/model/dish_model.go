package model

import "time"

// DishModel is the GORM-specific struct for the 'dishes' table.
type DishModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_dishes_name"`
	NameKey     string  `gorm:"type:varchar(255);not null;default:'';index:idx_dishes_name_key"`
	Recipe      string  `gorm:"type:text"`
	CookingTime int     `gorm:"not null;check:chk_dishes_cooking_time,cooking_time > 0"`
	Price       float64 `gorm:"not null;check:chk_dishes_price,price > 0"`
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}

// IngredientModel is the GORM-specific struct for the 'ingredients' table.
type IngredientModel struct {
	ID       int64      `gorm:"primaryKey;autoIncrement"`
	Name     string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_ingredients_name"`
	Stock    float64    `gorm:"not null;default:0;check:chk_ingredients_stock,stock >= 0"`
	Unit     string     `gorm:"type:varchar(32);not null"`
	Expiry   *time.Time `gorm:"index"`
	Supplier string     `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// DishIngredientModel is the GORM-specific struct for the 'dish_ingredients' table.
// Each row is the quantity of one ingredient consumed by one portion of a dish.
type DishIngredientModel struct {
	DishID       int64            `gorm:"primaryKey;autoIncrement:false"`
	IngredientID int64            `gorm:"primaryKey;autoIncrement:false;index"`
	Quantity     float64          `gorm:"not null;check:chk_dish_ingredients_quantity,quantity > 0"`
	Dish         *DishModel       `gorm:"foreignKey:DishID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Ingredient   *IngredientModel `gorm:"foreignKey:IngredientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (DishIngredientModel) TableName() string {
	return "dish_ingredients"
}
