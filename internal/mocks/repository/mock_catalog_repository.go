package repository

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a mock that asserts its expectations on cleanup.
func NewMockCustomerRepository(t *testing.T) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*entity.Customer)

	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	args := m.Called(ctx, phone)
	customer, _ := args.Get(0).(*entity.Customer)

	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*entity.Customer)

	return customers, args.Error(1)
}

func (m *MockCustomerRepository) Search(ctx context.Context, term string) ([]*entity.Customer, error) {
	args := m.Called(ctx, term)
	customers, _ := args.Get(0).([]*entity.Customer)

	return customers, args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockDishRepository is a mock of repository.DishRepository.
type MockDishRepository struct {
	mock.Mock
}

// NewMockDishRepository creates a mock that asserts its expectations on cleanup.
func NewMockDishRepository(t *testing.T) *MockDishRepository {
	m := &MockDishRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *MockDishRepository) FindByID(ctx context.Context, id int64) (*entity.Dish, error) {
	args := m.Called(ctx, id)
	dish, _ := args.Get(0).(*entity.Dish)

	return dish, args.Error(1)
}

func (m *MockDishRepository) FindByNames(ctx context.Context, names []string) (map[string]*entity.Dish, error) {
	args := m.Called(ctx, names)
	dishes, _ := args.Get(0).(map[string]*entity.Dish)

	return dishes, args.Error(1)
}

func (m *MockDishRepository) FindAll(ctx context.Context) ([]*entity.Dish, error) {
	args := m.Called(ctx)
	dishes, _ := args.Get(0).([]*entity.Dish)

	return dishes, args.Error(1)
}

func (m *MockDishRepository) Search(ctx context.Context, term string) ([]*entity.Dish, error) {
	args := m.Called(ctx, term)
	dishes, _ := args.Get(0).([]*entity.Dish)

	return dishes, args.Error(1)
}

func (m *MockDishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *MockDishRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDishRepository) SetRequirement(ctx context.Context, requirement *entity.DishRequirement) error {
	return m.Called(ctx, requirement).Error(0)
}

func (m *MockDishRepository) FindRequirements(ctx context.Context, dishIDs []int64) ([]*entity.DishRequirement, error) {
	args := m.Called(ctx, dishIDs)
	requirements, _ := args.Get(0).([]*entity.DishRequirement)

	return requirements, args.Error(1)
}

// MockIngredientRepository is a mock of repository.IngredientRepository.
type MockIngredientRepository struct {
	mock.Mock
}

// NewMockIngredientRepository creates a mock that asserts its expectations on cleanup.
func NewMockIngredientRepository(t *testing.T) *MockIngredientRepository {
	m := &MockIngredientRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIngredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return m.Called(ctx, ingredient).Error(0)
}

func (m *MockIngredientRepository) FindByID(ctx context.Context, id int64) (*entity.Ingredient, error) {
	args := m.Called(ctx, id)
	ingredient, _ := args.Get(0).(*entity.Ingredient)

	return ingredient, args.Error(1)
}

func (m *MockIngredientRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Ingredient, error) {
	args := m.Called(ctx, ids)
	ingredients, _ := args.Get(0).([]*entity.Ingredient)

	return ingredients, args.Error(1)
}

func (m *MockIngredientRepository) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	args := m.Called(ctx)
	ingredients, _ := args.Get(0).([]*entity.Ingredient)

	return ingredients, args.Error(1)
}

func (m *MockIngredientRepository) UpdateStock(ctx context.Context, id int64, stock float64) error {
	return m.Called(ctx, id, stock).Error(0)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockIngredientRepository) FindLowStock(ctx context.Context, threshold float64) ([]*entity.Ingredient, error) {
	args := m.Called(ctx, threshold)
	ingredients, _ := args.Get(0).([]*entity.Ingredient)

	return ingredients, args.Error(1)
}

func (m *MockIngredientRepository) FindExpired(ctx context.Context, asOf time.Time) ([]*entity.Ingredient, error) {
	args := m.Called(ctx, asOf)
	ingredients, _ := args.Get(0).([]*entity.Ingredient)

	return ingredients, args.Error(1)
}

func (m *MockIngredientRepository) DeductStock(ctx context.Context, requirements []entity.StockRequirement) (int64, error) {
	args := m.Called(ctx, requirements)

	return args.Get(0).(int64), args.Error(1)
}
