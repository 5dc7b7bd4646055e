package repository

import (
	"context"
	"testing"

	"restaurant/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates a mock that asserts its expectations on cleanup.
func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderRepository) FindItems(ctx context.Context, orderID int64) ([]entity.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]entity.OrderItem)

	return items, args.Error(1)
}

func (m *MockOrderRepository) FindDetailsByID(ctx context.Context, id int64) (*entity.OrderDetails, error) {
	args := m.Called(ctx, id)
	details, _ := args.Get(0).(*entity.OrderDetails)

	return details, args.Error(1)
}

func (m *MockOrderRepository) FindAllDetails(ctx context.Context) ([]*entity.OrderDetails, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*entity.OrderDetails)

	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindDetailsByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.OrderDetails, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*entity.OrderDetails)

	return orders, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, expected, next entity.OrderStatus) (bool, error) {
	args := m.Called(ctx, id, expected, next)

	return args.Bool(0), args.Error(1)
}

// MockBillRepository is a mock of repository.BillRepository.
type MockBillRepository struct {
	mock.Mock
}

// NewMockBillRepository creates a mock that asserts its expectations on cleanup.
func NewMockBillRepository(t *testing.T) *MockBillRepository {
	m := &MockBillRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBillRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *MockBillRepository) FindByOrderID(ctx context.Context, orderID int64) (*entity.Bill, error) {
	args := m.Called(ctx, orderID)
	bill, _ := args.Get(0).(*entity.Bill)

	return bill, args.Error(1)
}

// MockDeliveryRepository is a mock of repository.DeliveryRepository.
type MockDeliveryRepository struct {
	mock.Mock
}

// NewMockDeliveryRepository creates a mock that asserts its expectations on cleanup.
func NewMockDeliveryRepository(t *testing.T) *MockDeliveryRepository {
	m := &MockDeliveryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	return m.Called(ctx, delivery).Error(0)
}

func (m *MockDeliveryRepository) FindInfoByOrderID(ctx context.Context, orderID int64) (*entity.DeliveryInfo, error) {
	args := m.Called(ctx, orderID)
	info, _ := args.Get(0).(*entity.DeliveryInfo)

	return info, args.Error(1)
}
