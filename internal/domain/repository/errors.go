// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the use case layer and the SQLite implementation.
package repository

import domainerrors "restaurant/internal/domain/errors"

// ErrNotFound is the generic lookup miss; every entity sentinel below matches it with errors.Is.
var ErrNotFound = domainerrors.ErrNotFound

// Domain-specific lookup misses.
var (
	ErrCustomerNotFound   = domainerrors.ErrNotFound.WithDetails("customer")
	ErrEmployeeNotFound   = domainerrors.ErrNotFound.WithDetails("employee")
	ErrDishNotFound       = domainerrors.ErrNotFound.WithDetails("dish")
	ErrIngredientNotFound = domainerrors.ErrNotFound.WithDetails("ingredient")
	ErrShipperNotFound    = domainerrors.ErrNotFound.WithDetails("shipper")
	ErrOrderNotFound      = domainerrors.ErrNotFound.WithDetails("order")
	ErrBillNotFound       = domainerrors.ErrNotFound.WithDetails("bill")
	ErrDeliveryNotFound   = domainerrors.ErrNotFound.WithDetails("delivery")
)
