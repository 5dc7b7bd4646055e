package entity

import (
	"math"
	"time"
)

const (
	// QuantityDecimals is the number of decimal places kept for stock and recipe amounts.
	QuantityDecimals = 6
	quantityScale    = 1e6

	// QuantityTolerance absorbs float residue when comparing amounts.
	QuantityTolerance = 1e-9
)

// RoundQuantity rounds q to QuantityDecimals places.
func RoundQuantity(q float64) float64 {
	return math.Round(q*quantityScale) / quantityScale
}

// Ingredient is a stocked raw material. Stock never goes negative.
type Ingredient struct {
	ID       int64
	Name     string
	Stock    float64
	Unit     string
	Expiry   time.Time
	Supplier string
}

// IsExpired reports whether the ingredient expired before asOf.
func (i *Ingredient) IsExpired(asOf time.Time) bool {
	return !i.Expiry.IsZero() && i.Expiry.Before(asOf)
}

// Covers reports whether the stock can supply required.
func (i *Ingredient) Covers(required float64) bool {
	return i.Stock+QuantityTolerance >= required
}

// StockRequirement is the aggregated amount of one ingredient an order needs.
type StockRequirement struct {
	IngredientID int64
	Quantity     float64
}
