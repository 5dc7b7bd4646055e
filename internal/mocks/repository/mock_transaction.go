// Package repository provides testify mocks of the domain repository interfaces.
package repository

import (
	"context"

	"restaurant/internal/domain/repository"
)

// MockTransactionManager runs the callback directly against Factory, so the
// callback sees the same mocks the test configured.
type MockTransactionManager struct {
	Factory repository.RepositoryFactory

	// BeginErr, when set, is returned without running the callback.
	BeginErr error
	Calls    int
}

// NewMockTransactionManager creates a transaction manager that always hands out factory.
func NewMockTransactionManager(factory repository.RepositoryFactory) *MockTransactionManager {
	return &MockTransactionManager{Factory: factory}
}

// Execute counts the call and runs fn.
func (m *MockTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	m.Calls++
	if m.BeginErr != nil {
		return m.BeginErr
	}

	return fn(m.Factory)
}

// MockRepositoryFactory returns the repositories it was built with.
type MockRepositoryFactory struct {
	Customers   repository.CustomerRepository
	Employees   repository.EmployeeRepository
	Dishes      repository.DishRepository
	Ingredients repository.IngredientRepository
	Shippers    repository.ShipperRepository
	Orders      repository.OrderRepository
	Bills       repository.BillRepository
	Deliveries  repository.DeliveryRepository
}

func (f *MockRepositoryFactory) CustomerRepo() repository.CustomerRepository     { return f.Customers }
func (f *MockRepositoryFactory) EmployeeRepo() repository.EmployeeRepository     { return f.Employees }
func (f *MockRepositoryFactory) DishRepo() repository.DishRepository             { return f.Dishes }
func (f *MockRepositoryFactory) IngredientRepo() repository.IngredientRepository { return f.Ingredients }
func (f *MockRepositoryFactory) ShipperRepo() repository.ShipperRepository       { return f.Shippers }
func (f *MockRepositoryFactory) OrderRepo() repository.OrderRepository           { return f.Orders }
func (f *MockRepositoryFactory) BillRepo() repository.BillRepository             { return f.Bills }
func (f *MockRepositoryFactory) DeliveryRepo() repository.DeliveryRepository     { return f.Deliveries }
