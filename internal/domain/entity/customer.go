// Package entity contains the core business objects of the restaurant,
// each an explicit record with named, typed fields.
package entity

// Customer places orders. Phone uniquely identifies a customer.
type Customer struct {
	ID    int64  // Auto-increment identifier.
	Name  string // Display name.
	Phone string // Unique contact number.
}

// Employee is attributed on bills.
type Employee struct {
	ID   int64
	Name string
}

// Shipper delivers orders.
type Shipper struct {
	ID   int64
	Info string // Free-form contact or vehicle information.
}
