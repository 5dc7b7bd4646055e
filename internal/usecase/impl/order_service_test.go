package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"restaurant/config"
	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"
	"restaurant/internal/errors"
	"restaurant/internal/infra/metrics"
	"restaurant/internal/infra/persistence/sqlite"
	"restaurant/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// kitchen is a seeded store with the order service on top of it.
type kitchen struct {
	db       *gorm.DB
	service  *orderService
	metrics  *metrics.Metrics
	customer *entity.Customer
	employee *entity.Employee
	shipper  *entity.Shipper
	flour    *entity.Ingredient
	sugar    *entity.Ingredient
	bread    *entity.Dish
	cake     *entity.Dish
	tea      *entity.Dish
}

// newKitchen seeds Flour 5 kg and Sugar 2 kg. Bread needs 3 kg Flour, Cake needs
// 1 kg Flour and 10 kg Sugar, Tea has no recipe.
func newKitchen(t *testing.T) *kitchen {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{SQLite: &config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "food_db.db")}}
	config.ApplyDefaults(cfg)

	db, err := sqlite.Open(cfg, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	require.NoError(t, sqlite.Migrate(ctx, db))

	k := &kitchen{
		db:       db,
		metrics:  metrics.New(cfg),
		customer: &entity.Customer{Name: "Ann", Phone: "555-0001"},
		employee: &entity.Employee{Name: "Eve"},
		shipper:  &entity.Shipper{Info: "Sam, scooter"},
		flour:    &entity.Ingredient{Name: "Flour", Stock: 5, Unit: "kg"},
		sugar:    &entity.Ingredient{Name: "Sugar", Stock: 2, Unit: "kg"},
		bread:    &entity.Dish{Name: "Bread", Recipe: "knead, bake", CookingTime: 40, Price: 4},
		cake:     &entity.Dish{Name: "Cake", Recipe: "mix, bake", CookingTime: 60, Price: 12},
		tea:      &entity.Dish{Name: "Tea", Recipe: "steep", CookingTime: 3, Price: 1.5},
	}

	require.NoError(t, sqlite.NewCustomerRepository(db).Create(ctx, k.customer))
	require.NoError(t, sqlite.NewEmployeeRepository(db).Create(ctx, k.employee))
	require.NoError(t, sqlite.NewShipperRepository(db).Create(ctx, k.shipper))

	ingredients := sqlite.NewIngredientRepository(db)
	require.NoError(t, ingredients.Create(ctx, k.flour))
	require.NoError(t, ingredients.Create(ctx, k.sugar))

	dishes := sqlite.NewDishRepository(db)
	for _, dish := range []*entity.Dish{k.bread, k.cake, k.tea} {
		require.NoError(t, dishes.Create(ctx, dish))
	}
	for _, requirement := range []*entity.DishRequirement{
		{DishID: k.bread.ID, IngredientID: k.flour.ID, Quantity: 3},
		{DishID: k.cake.ID, IngredientID: k.flour.ID, Quantity: 1},
		{DishID: k.cake.ID, IngredientID: k.sugar.ID, Quantity: 10},
	} {
		require.NoError(t, dishes.SetRequirement(ctx, requirement))
	}

	svc := NewOrderService(OrderServiceParams{
		TxManager:    sqlite.NewTransactionManager(db),
		OrderRepo:    sqlite.NewOrderRepository(db),
		DeliveryRepo: sqlite.NewDeliveryRepository(db),
		Metrics:      k.metrics,
		Logger:       newDiscardLogger(),
	}).(*orderService)
	svc.now = func() time.Time { return testNow }
	k.service = svc

	return k
}

func (k *kitchen) stock(t *testing.T, ingredient *entity.Ingredient) float64 {
	t.Helper()

	found, err := sqlite.NewIngredientRepository(k.db).FindByID(context.Background(), ingredient.ID)
	require.NoError(t, err)

	return found.Stock
}

func (k *kitchen) count(t *testing.T, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, k.db.Table(table).Count(&n).Error)

	return n
}

// counterValue reads one labeled counter from the registry, or 0 when absent.
func counterValue(t *testing.T, m *metrics.Metrics, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}

	metrics:
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] != pair.GetValue() {
					continue metrics
				}
			}

			return metric.GetCounter().GetValue()
		}
	}

	return 0
}

func (k *kitchen) placeInput(request string, total float64) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		DishRequest: request,
		TotalPrice:  total,
		CustomerID:  k.customer.ID,
		EmployeeID:  k.employee.ID,
		ShipperID:   k.shipper.ID,
	}
}

func TestOrderService_CreateOrder_IDsIncreaseAndStartPending(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	var previous int64
	for _, request := range []string{"Bread", "2 x Tea, bread", "Cake"} {
		id, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: request, TotalPrice: 10, CustomerID: k.customer.ID})
		require.NoError(t, err)
		assert.Greater(t, id, previous)
		previous = id

		order, err := k.service.GetOrderByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		assert.Equal(t, request, order.DishRequest)
		assert.True(t, order.CreatedAt.Equal(testNow))
	}

	// Creating orders never touches stock.
	assert.InDelta(t, 5, k.stock(t, k.flour), 1e-9)

	order, err := k.service.GetOrderByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Ann", order.CustomerName)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Tea", order.Items[0].DishName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 1.5, order.Items[0].UnitPrice, 1e-9)
	assert.Equal(t, "Bread", order.Items[1].DishName)

	assert.InDelta(t, 3, counterValue(t, k.metrics, "restaurant_order_operations_total",
		map[string]string{"operation": opCreateOrder, "status": "success"}), 0)
}

func TestOrderService_CreateOrder_Rejections(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateOrderInput
		kind  domainerrors.Kind
	}{
		{name: "empty request", input: &usecase.CreateOrderInput{DishRequest: "", TotalPrice: 4, CustomerID: k.customer.ID}, kind: domainerrors.KindValidation},
		{name: "blank request", input: &usecase.CreateOrderInput{DishRequest: " , ", TotalPrice: 4, CustomerID: k.customer.ID}, kind: domainerrors.KindValidation},
		{name: "zero price", input: &usecase.CreateOrderInput{DishRequest: "Bread", TotalPrice: 0, CustomerID: k.customer.ID}, kind: domainerrors.KindValidation},
		{name: "unknown dish", input: &usecase.CreateOrderInput{DishRequest: "Bread, Pizza", TotalPrice: 4, CustomerID: k.customer.ID}, kind: domainerrors.KindValidation},
		{name: "unknown customer", input: &usecase.CreateOrderInput{DishRequest: "Bread", TotalPrice: 4, CustomerID: 999}, kind: domainerrors.KindConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := k.service.CreateOrder(ctx, tt.input)
			require.Error(t, err)
			assert.Zero(t, id)
			assert.Equal(t, tt.kind, domainerrors.KindOf(err))
		})
	}

	assert.Zero(t, k.count(t, "orders"))
	assert.Zero(t, k.count(t, "order_items"))
}

func TestOrderService_DeductStock_NoPartialDecrement(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	cakeID, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: "Cake", TotalPrice: 12, CustomerID: k.customer.ID})
	require.NoError(t, err)

	err = k.service.DeductStockForOrder(ctx, cakeID)
	require.Error(t, err)

	var shortage *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &shortage))
	assert.Equal(t, k.sugar.ID, shortage.IngredientID)
	assert.Equal(t, "Sugar", shortage.Name)
	assert.InDelta(t, 10, shortage.Required, 1e-9)
	assert.InDelta(t, 2, shortage.Available, 1e-9)

	// Flour was sufficient but must not have been touched either.
	assert.InDelta(t, 5, k.stock(t, k.flour), 1e-9)
	assert.InDelta(t, 2, k.stock(t, k.sugar), 1e-9)
	assert.InDelta(t, 1, counterValue(t, k.metrics, "restaurant_stock_shortages_total",
		map[string]string{"ingredient": "Sugar"}), 0)
}

func TestOrderService_DeductStock_AggregatesAndNeverGoesNegative(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	// Bread x1 needs 3 kg; the second order would need 3 more with 2 left.
	first, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: "Bread, Tea", TotalPrice: 5.5, CustomerID: k.customer.ID})
	require.NoError(t, err)
	second, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: "bread", TotalPrice: 4, CustomerID: k.customer.ID})
	require.NoError(t, err)
	double, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: "Bread x2", TotalPrice: 8, CustomerID: k.customer.ID})
	require.NoError(t, err)

	require.NoError(t, k.service.DeductStockForOrder(ctx, first))
	assert.InDelta(t, 2, k.stock(t, k.flour), 1e-9)

	assert.Equal(t, domainerrors.KindInsufficientStock, domainerrors.KindOf(k.service.DeductStockForOrder(ctx, second)))
	assert.Equal(t, domainerrors.KindInsufficientStock, domainerrors.KindOf(k.service.DeductStockForOrder(ctx, double)))
	assert.InDelta(t, 2, k.stock(t, k.flour), 1e-9)

	err = k.service.DeductStockForOrder(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderService_PlaceFullOrder_FlourAndBread(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	out, err := k.service.PlaceFullOrder(ctx, k.placeInput("Bread", 4))
	require.NoError(t, err)
	require.NotNil(t, out.Order)
	require.NotNil(t, out.Bill)
	assert.Nil(t, out.Delivery)
	assert.InDelta(t, 4, out.Bill.TotalAmount, 1e-9)
	assert.Len(t, out.Bill.ReceiptNo, 36)
	assert.InDelta(t, 2, k.stock(t, k.flour), 1e-9)

	_, err = k.service.PlaceFullOrder(ctx, k.placeInput("Bread", 4))
	require.Error(t, err)

	var shortage *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &shortage))
	assert.Equal(t, "Flour", shortage.Name)
	assert.InDelta(t, 3, shortage.Required, 1e-9)
	assert.InDelta(t, 2, shortage.Available, 1e-9)
	assert.Contains(t, err.Error(), `"Flour"`)

	assert.InDelta(t, 2, k.stock(t, k.flour), 1e-9)
	assert.EqualValues(t, 1, k.count(t, "orders"))
	assert.EqualValues(t, 1, k.count(t, "bills"))
	assert.InDelta(t, 1, counterValue(t, k.metrics, "restaurant_order_operations_total",
		map[string]string{"operation": opPlaceFullOrder, "status": "success"}), 0)
	assert.InDelta(t, 1, counterValue(t, k.metrics, "restaurant_order_operations_total",
		map[string]string{"operation": opPlaceFullOrder, "status": "insufficient_stock"}), 0)
}

func TestOrderService_PlaceFullOrder_BadEmployeeLeavesNothing(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	input := k.placeInput("Bread", 4)
	input.EmployeeID = 999

	out, err := k.service.PlaceFullOrder(ctx, input)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, domainerrors.KindConstraintViolation, domainerrors.KindOf(err))

	assert.Zero(t, k.count(t, "orders"))
	assert.Zero(t, k.count(t, "order_items"))
	assert.Zero(t, k.count(t, "bills"))
	assert.InDelta(t, 5, k.stock(t, k.flour), 1e-9)
}

func TestOrderService_PlaceFullOrder_WithDelivery(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	input := k.placeInput("Tea x2", 3)
	billAmount := 5.0
	input.BillAmount = &billAmount
	input.Delivery = &usecase.DeliveryInput{Address: "1 Main St", Distance: 2.5, Fee: 2}

	out, err := k.service.PlaceFullOrder(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, out.Delivery)
	assert.Equal(t, k.shipper.ID, out.Delivery.ShipperID)
	assert.InDelta(t, 5, out.Bill.TotalAmount, 1e-9)

	info, err := k.service.GetDeliveryInfo(ctx, out.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam, scooter", info.ShipperInfo)
	assert.Equal(t, "1 Main St", info.Address)
	assert.True(t, info.DeliveryTime.Equal(testNow))

	// A delivery without an address is rejected before any write.
	bad := k.placeInput("Tea", 1.5)
	bad.Delivery = &usecase.DeliveryInput{Distance: 1}
	_, err = k.service.PlaceFullOrder(ctx, bad)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.EqualValues(t, 1, k.count(t, "orders"))
}

func TestOrderService_PlaceFullOrder_CompedBill(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	comped := 0.0
	input := k.placeInput("Tea", 1.5)
	input.BillAmount = &comped

	out, err := k.service.PlaceFullOrder(ctx, input)
	require.NoError(t, err)
	assert.Zero(t, out.Bill.TotalAmount)

	negative := -1.0
	input = k.placeInput("Tea", 1.5)
	input.BillAmount = &negative
	_, err = k.service.PlaceFullOrder(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "BillAmount")
}

func TestOrderService_PlaceFullOrder_FractionalStockRunsOutExactly(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	salt := &entity.Ingredient{Name: "Salt", Stock: 0.3, Unit: "kg"}
	require.NoError(t, sqlite.NewIngredientRepository(k.db).Create(ctx, salt))
	soup := &entity.Dish{Name: "Soup", Recipe: "simmer", CookingTime: 20, Price: 6}
	dishes := sqlite.NewDishRepository(k.db)
	require.NoError(t, dishes.Create(ctx, soup))
	require.NoError(t, dishes.SetRequirement(ctx, &entity.DishRequirement{DishID: soup.ID, IngredientID: salt.ID, Quantity: 0.1}))

	for _, left := range []float64{0.2, 0.1, 0} {
		_, err := k.service.PlaceFullOrder(ctx, k.placeInput("Soup", 6))
		require.NoError(t, err)
		assert.Equal(t, left, k.stock(t, salt))
	}

	_, err := k.service.PlaceFullOrder(ctx, k.placeInput("Soup", 6))

	var shortage *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &shortage))
	assert.Equal(t, 0.1, shortage.Required)
	assert.Equal(t, 0.0, shortage.Available)
}

func TestOrderService_CreateOrder_NonASCIIDishName(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	creme := &entity.Dish{Name: "CRÈME", Recipe: "whip", CookingTime: 5, Price: 3}
	require.NoError(t, sqlite.NewDishRepository(k.db).Create(ctx, creme))

	for _, request := range []string{"CRÈME", "2 x crème"} {
		id, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: request, TotalPrice: 3, CustomerID: k.customer.ID})
		require.NoError(t, err)

		order, err := k.service.GetOrderByID(ctx, id)
		require.NoError(t, err)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "CRÈME", order.Items[0].DishName)
	}
}

func TestOrderService_CreateBillAndDelivery_Constraints(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	_, err := k.service.CreateBill(ctx, &usecase.CreateBillInput{OrderID: 999, EmployeeID: k.employee.ID, ShipperID: k.shipper.ID, TotalAmount: 4})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindConstraintViolation, domainerrors.KindOf(err))
	assert.Zero(t, k.count(t, "bills"))

	orderID, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: "Tea", TotalPrice: 1.5, CustomerID: k.customer.ID})
	require.NoError(t, err)

	billID, err := k.service.CreateBill(ctx, &usecase.CreateBillInput{OrderID: orderID, EmployeeID: k.employee.ID, ShipperID: k.shipper.ID, TotalAmount: 1.5})
	require.NoError(t, err)
	assert.NotZero(t, billID)

	_, err = k.service.CreateBill(ctx, &usecase.CreateBillInput{OrderID: orderID, EmployeeID: k.employee.ID, ShipperID: k.shipper.ID, TotalAmount: 1.5})
	assert.Equal(t, domainerrors.KindConstraintViolation, domainerrors.KindOf(err))

	deliveryID, err := k.service.AddDelivery(ctx, &usecase.AddDeliveryInput{OrderID: orderID, ShipperID: k.shipper.ID, Address: "2 High St", Distance: 1, Fee: 1})
	require.NoError(t, err)
	assert.NotZero(t, deliveryID)

	_, err = k.service.AddDelivery(ctx, &usecase.AddDeliveryInput{OrderID: orderID, ShipperID: 999, Address: "2 High St"})
	assert.Equal(t, domainerrors.KindConstraintViolation, domainerrors.KindOf(err))

	_, err = k.service.AddDelivery(ctx, &usecase.AddDeliveryInput{OrderID: orderID, ShipperID: k.shipper.ID, Address: "x", Distance: -1})
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

	_, err = k.service.GetDeliveryInfo(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderService_UpdateStatus_PendingToDeliveredRejected(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	orderID, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: "Tea", TotalPrice: 1.5, CustomerID: k.customer.ID})
	require.NoError(t, err)

	err = k.service.UpdateStatus(ctx, orderID, "Delivered")
	var invalid *domainerrors.InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Pending", invalid.From)
	assert.Equal(t, "Delivered", invalid.To)

	order, err := k.service.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	for _, next := range []string{"preparing", "Ready", "DELIVERED"} {
		require.NoError(t, k.service.UpdateStatus(ctx, orderID, next))
	}

	order, err = k.service.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)

	assert.ErrorIs(t, k.service.UpdateStatus(ctx, 999, "Preparing"), repository.ErrOrderNotFound)
}

func TestOrderService_UpdateStatus_IllegalPairsLeaveStatusUnchanged(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	// Paths that bring a fresh order into each status.
	paths := map[entity.OrderStatus][]string{
		entity.OrderStatusPending:   nil,
		entity.OrderStatusPreparing: {"Preparing"},
		entity.OrderStatusReady:     {"Preparing", "Ready"},
		entity.OrderStatusDelivered: {"Preparing", "Ready", "Delivered"},
		entity.OrderStatusCancelled: {"Cancelled"},
	}

	targets := append([]string{"Shipped", ""}, func() []string {
		names := make([]string, 0, len(entity.OrderStatuses))
		for _, status := range entity.OrderStatuses {
			names = append(names, string(status))
		}

		return names
	}()...)

	for from, path := range paths {
		for _, to := range targets {
			next, known := entity.ParseOrderStatus(to)
			if known && entity.CanTransition(from, next) {
				continue
			}

			t.Run(string(from)+"->"+to, func(t *testing.T) {
				orderID, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: "Tea", TotalPrice: 1.5, CustomerID: k.customer.ID})
				require.NoError(t, err)
				for _, step := range path {
					require.NoError(t, k.service.UpdateStatus(ctx, orderID, step))
				}

				err = k.service.UpdateStatus(ctx, orderID, to)
				assert.Equal(t, domainerrors.KindInvalidTransition, domainerrors.KindOf(err))

				order, err := k.service.GetOrderByID(ctx, orderID)
				require.NoError(t, err)
				assert.Equal(t, from, order.Status)
			})
		}
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	k := newKitchen(t)
	ctx := context.Background()

	first, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: "Tea", TotalPrice: 1.5, CustomerID: k.customer.ID})
	require.NoError(t, err)

	k.service.now = func() time.Time { return testNow.Add(time.Minute) }
	second, err := k.service.CreateOrder(ctx, &usecase.CreateOrderInput{DishRequest: "Bread", TotalPrice: 4, CustomerID: k.customer.ID})
	require.NoError(t, err)
	require.NoError(t, k.service.UpdateStatus(ctx, first, "Cancelled"))

	all, err := k.service.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second, all[0].ID)
	assert.Equal(t, "555-0001", all[0].CustomerPhone)

	cancelled, err := k.service.ListOrdersByStatus(ctx, "cancelled")
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, first, cancelled[0].ID)

	_, err = k.service.ListOrdersByStatus(ctx, "Lost")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_ExpiredDeadlineRollsBack(t *testing.T) {
	k := newKitchen(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := k.service.PlaceFullOrder(ctx, k.placeInput("Bread", 4))
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindTimeout, domainerrors.KindOf(err))

	assert.Zero(t, k.count(t, "orders"))
	assert.InDelta(t, 5, k.stock(t, k.flour), 1e-9)
}
