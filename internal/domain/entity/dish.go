package entity

import "strings"

// Dish is a menu item.
type Dish struct {
	ID          int64
	Name        string  // Unique, matched case-insensitively in dish requests.
	Recipe      string  // Preparation notes.
	CookingTime int     // Minutes, always > 0.
	Price       float64 // Always > 0.
}

// DishRequirement is the quantity of one ingredient consumed by one portion of a dish,
// expressed in the ingredient's own unit.
type DishRequirement struct {
	DishID       int64
	IngredientID int64
	Quantity     float64
}

// DishNameKey folds a dish name for case-insensitive matching: inner whitespace
// collapses to single spaces and letters are lower-cased, including non-ASCII ones.
func DishNameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
