// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"
	"restaurant/internal/errors"
	logs "restaurant/internal/infra/log"
	"restaurant/internal/infra/metrics"
	"restaurant/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Operation names used in logs and metrics.
const (
	opCreateOrder    = "create_order"
	opDeductStock    = "deduct_stock_for_order"
	opCreateBill     = "create_bill"
	opAddDelivery    = "add_delivery"
	opUpdateStatus   = "update_status"
	opPlaceFullOrder = "place_full_order"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	deliveryRepo repository.DeliveryRepository
	metrics      *metrics.Metrics
	logger       *slog.Logger
	now          func() time.Time
	newReceiptNo func() (string, error)
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	DeliveryRepo repository.DeliveryRepository
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		deliveryRepo: params.DeliveryRepo,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
		newReceiptNo: newReceiptNo,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

func newReceiptNo() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate receipt number")
	}

	return id.String(), nil
}

// CreateOrder validates the request, resolves every dish and inserts the order with its items.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (int64, error) {
	if err := validateInput(input); err != nil {
		return 0, srv.finish(ctx, opCreateOrder, err)
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = srv.createOrder(ctx, repoFactory, input.DishRequest, input.TotalPrice, input.CustomerID)

		return err
	})
	if err != nil {
		return 0, srv.finish(ctx, opCreateOrder, errors.Wrap(err, "failed to create order"))
	}

	srv.finish(ctx, opCreateOrder, nil, slog.Int64("orderID", order.ID), slog.Int64("customerID", order.CustomerID))

	return order.ID, nil
}

// DeductStockForOrder consumes the ingredients of an existing order.
func (srv *orderService) DeductStockForOrder(ctx context.Context, orderID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to load order")
		}

		return srv.deductStock(ctx, repoFactory, order.Items)
	})
	if err != nil {
		return srv.finish(ctx, opDeductStock, errors.Wrapf(err, "failed to deduct stock for order %d", orderID), slog.Int64("orderID", orderID))
	}

	srv.finish(ctx, opDeductStock, nil, slog.Int64("orderID", orderID))

	return nil
}

// CreateBill bills an order. Unknown references and a second bill are constraint violations.
func (srv *orderService) CreateBill(ctx context.Context, input *usecase.CreateBillInput) (int64, error) {
	if err := validateInput(input); err != nil {
		return 0, srv.finish(ctx, opCreateBill, err)
	}

	var bill *entity.Bill
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		bill, err = srv.createBill(ctx, repoFactory, input)

		return err
	})
	if err != nil {
		return 0, srv.finish(ctx, opCreateBill, errors.Wrap(err, "failed to create bill"), slog.Int64("orderID", input.OrderID))
	}

	srv.finish(ctx, opCreateBill, nil, slog.Int64("orderID", bill.OrderID), slog.Int64("billID", bill.ID), slog.String("receiptNo", bill.ReceiptNo))

	return bill.ID, nil
}

// AddDelivery records the delivery of an order.
func (srv *orderService) AddDelivery(ctx context.Context, input *usecase.AddDeliveryInput) (int64, error) {
	if err := validateInput(input); err != nil {
		return 0, srv.finish(ctx, opAddDelivery, err)
	}

	var delivery *entity.Delivery
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		delivery, err = srv.addDelivery(ctx, repoFactory, input)

		return err
	})
	if err != nil {
		return 0, srv.finish(ctx, opAddDelivery, errors.Wrap(err, "failed to add delivery"), slog.Int64("orderID", input.OrderID))
	}

	srv.finish(ctx, opAddDelivery, nil, slog.Int64("orderID", delivery.OrderID), slog.Int64("deliveryID", delivery.ID))

	return delivery.ID, nil
}

// UpdateStatus applies a legal transition. The stored status is compared again on
// write, so a concurrent change makes this call fail instead of overwriting it.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID int64, newStatus string) error {
	attrs := []slog.Attr{slog.Int64("orderID", orderID), slog.String("status", newStatus)}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to load order")
		}

		next, ok := entity.ParseOrderStatus(newStatus)
		if !ok {
			return &domainerrors.InvalidTransitionError{From: string(order.Status), To: newStatus}
		}

		if err := entity.ValidateTransition(order.Status, next); err != nil {
			return err
		}

		changed, err := orderRepo.UpdateStatus(ctx, orderID, order.Status, next)
		if err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		if !changed {
			return &domainerrors.InvalidTransitionError{From: string(order.Status), To: string(next)}
		}

		return nil
	})
	if err != nil {
		return srv.finish(ctx, opUpdateStatus, errors.Wrapf(err, "failed to update status of order %d", orderID), attrs...)
	}

	srv.finish(ctx, opUpdateStatus, nil, attrs...)

	return nil
}

// PlaceFullOrder runs create, deduct, bill and the optional delivery in a single
// transaction. Nothing is committed unless every step succeeds.
func (srv *orderService) PlaceFullOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, srv.finish(ctx, opPlaceFullOrder, err)
	}

	billAmount := input.TotalPrice
	if input.BillAmount != nil {
		billAmount = *input.BillAmount
	}

	output := &usecase.PlaceOrderOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := srv.createOrder(ctx, repoFactory, input.DishRequest, input.TotalPrice, input.CustomerID)
		if err != nil {
			return err
		}
		output.Order = order

		if err := srv.deductStock(ctx, repoFactory, order.Items); err != nil {
			return err
		}

		output.Bill, err = srv.createBill(ctx, repoFactory, &usecase.CreateBillInput{
			OrderID:     order.ID,
			EmployeeID:  input.EmployeeID,
			ShipperID:   input.ShipperID,
			TotalAmount: billAmount,
		})
		if err != nil {
			return err
		}

		if input.Delivery == nil {
			return nil
		}

		shipperID := input.Delivery.ShipperID
		if shipperID == 0 {
			shipperID = input.ShipperID
		}

		output.Delivery, err = srv.addDelivery(ctx, repoFactory, &usecase.AddDeliveryInput{
			OrderID:      order.ID,
			ShipperID:    shipperID,
			Address:      input.Delivery.Address,
			Distance:     input.Delivery.Distance,
			Fee:          input.Delivery.Fee,
			DeliveryTime: input.Delivery.DeliveryTime,
		})

		return err
	})
	if err != nil {
		return nil, srv.finish(ctx, opPlaceFullOrder, errors.Wrap(err, "failed to place order"), slog.Int64("customerID", input.CustomerID))
	}

	srv.finish(ctx, opPlaceFullOrder, nil,
		slog.Int64("orderID", output.Order.ID),
		slog.Int64("billID", output.Bill.ID),
		slog.Bool("delivery", output.Delivery != nil),
	)

	return output, nil
}

// GetOrderByID returns the order with its customer and line items.
func (srv *orderService) GetOrderByID(ctx context.Context, orderID int64) (*entity.OrderDetails, error) {
	details, err := srv.orderRepo.FindDetailsByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get order %d", orderID)
	}

	return details, nil
}

// GetDeliveryInfo returns the delivery of an order with its shipper.
func (srv *orderService) GetDeliveryInfo(ctx context.Context, orderID int64) (*entity.DeliveryInfo, error) {
	info, err := srv.deliveryRepo.FindInfoByOrderID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get delivery of order %d", orderID)
	}

	return info, nil
}

// ListOrders returns every order with its customer, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.OrderDetails, error) {
	orders, err := srv.orderRepo.FindAllDetails(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListOrdersByStatus returns the orders currently in status.
func (srv *orderService) ListOrdersByStatus(ctx context.Context, status string) ([]*entity.OrderDetails, error) {
	parsed, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + strconv.Quote(status))
	}

	orders, err := srv.orderRepo.FindDetailsByStatus(ctx, parsed)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s orders", parsed)
	}

	return orders, nil
}

func (srv *orderService) createOrder(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	dishRequest string,
	totalPrice float64,
	customerID int64,
) (*entity.Order, error) {
	lines, err := parseDishRequest(dishRequest)
	if err != nil {
		return nil, err
	}

	if _, err := repoFactory.CustomerRepo().FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrConstraintViolation.WithDetails("orders.customer_id: customer " + strconv.FormatInt(customerID, 10) + " does not exist")
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, line.Name)
	}

	dishes, err := repoFactory.DishRepo().FindByNames(ctx, names)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve dishes")
	}

	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		dish, ok := dishes[line.Key]
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown dish " + strconv.Quote(line.Name))
		}

		items = append(items, entity.OrderItem{
			DishID:    dish.ID,
			DishName:  dish.Name,
			Quantity:  line.Quantity,
			UnitPrice: dish.Price,
		})
	}

	order := &entity.Order{
		DishRequest: dishRequest,
		TotalPrice:  totalPrice,
		CreatedAt:   srv.now(),
		Status:      entity.OrderStatusPending,
		CustomerID:  customerID,
		Items:       items,
	}
	if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to insert order")
	}

	return order, nil
}

// deductStock checks every required ingredient before changing any, then applies
// guarded decrements. The caller's transaction undoes earlier decrements on failure.
func (srv *orderService) deductStock(ctx context.Context, repoFactory repository.RepositoryFactory, items []entity.OrderItem) error {
	requirements, err := srv.stockRequirements(ctx, repoFactory, items)
	if err != nil {
		return err
	}
	if len(requirements) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(requirements))
	needed := make(map[int64]float64, len(requirements))
	for _, requirement := range requirements {
		ids = append(ids, requirement.IngredientID)
		needed[requirement.IngredientID] = requirement.Quantity
	}

	ingredientRepo := repoFactory.IngredientRepo()

	ingredients, err := ingredientRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load ingredients")
	}

	for _, ingredient := range ingredients {
		if !ingredient.Covers(needed[ingredient.ID]) {
			return srv.shortage(ctx, ingredient, needed[ingredient.ID])
		}
	}

	failedID, err := ingredientRepo.DeductStock(ctx, requirements)
	if err != nil {
		return errors.Wrap(err, "failed to deduct stock")
	}
	if failedID != 0 {
		ingredient, err := ingredientRepo.FindByID(ctx, failedID)
		if err != nil {
			return errors.Wrap(err, "failed to reload ingredient")
		}

		return srv.shortage(ctx, ingredient, needed[failedID])
	}

	return nil
}

// stockRequirements multiplies each item by its dish recipe and sums per ingredient,
// in ascending ingredient ID order.
func (srv *orderService) stockRequirements(ctx context.Context, repoFactory repository.RepositoryFactory, items []entity.OrderItem) ([]entity.StockRequirement, error) {
	if len(items) == 0 {
		return nil, nil
	}

	portions := make(map[int64]int, len(items))
	dishIDs := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := portions[item.DishID]; !ok {
			dishIDs = append(dishIDs, item.DishID)
		}
		portions[item.DishID] += item.Quantity
	}

	recipe, err := repoFactory.DishRepo().FindRequirements(ctx, dishIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipe requirements")
	}

	totals := make(map[int64]float64)
	for _, requirement := range recipe {
		totals[requirement.IngredientID] += requirement.Quantity * float64(portions[requirement.DishID])
	}

	requirements := make([]entity.StockRequirement, 0, len(totals))
	for ingredientID, quantity := range totals {
		requirements = append(requirements, entity.StockRequirement{
			IngredientID: ingredientID,
			Quantity:     entity.RoundQuantity(quantity),
		})
	}

	slices.SortFunc(requirements, func(a, b entity.StockRequirement) int {
		switch {
		case a.IngredientID < b.IngredientID:
			return -1
		case a.IngredientID > b.IngredientID:
			return 1
		default:
			return 0
		}
	})

	return requirements, nil
}

func (srv *orderService) shortage(ctx context.Context, ingredient *entity.Ingredient, required float64) error {
	available := entity.RoundQuantity(ingredient.Stock)
	srv.metrics.RecordStockShortage(ingredient.Name)
	srv.log(ctx).WarnContext(ctx, "Insufficient stock",
		slog.Int64("ingredientID", ingredient.ID),
		slog.String("ingredient", ingredient.Name),
		slog.Float64("required", required),
		slog.Float64("available", available),
	)

	return &domainerrors.InsufficientStockError{
		IngredientID: ingredient.ID,
		Name:         ingredient.Name,
		Unit:         ingredient.Unit,
		Required:     required,
		Available:    available,
	}
}

func (srv *orderService) createBill(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.CreateBillInput) (*entity.Bill, error) {
	receiptNo, err := srv.newReceiptNo()
	if err != nil {
		return nil, err
	}

	bill := &entity.Bill{
		ReceiptNo:   receiptNo,
		OrderID:     input.OrderID,
		EmployeeID:  input.EmployeeID,
		ShipperID:   input.ShipperID,
		TotalAmount: input.TotalAmount,
		BilledAt:    srv.now(),
	}
	if err := repoFactory.BillRepo().Create(ctx, bill); err != nil {
		return nil, errors.Wrap(err, "failed to insert bill")
	}

	return bill, nil
}

func (srv *orderService) addDelivery(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.AddDeliveryInput) (*entity.Delivery, error) {
	deliveryTime := input.DeliveryTime
	if deliveryTime.IsZero() {
		deliveryTime = srv.now()
	}

	delivery := &entity.Delivery{
		OrderID:      input.OrderID,
		ShipperID:    input.ShipperID,
		DeliveryTime: deliveryTime.UTC(),
		Address:      input.Address,
		Distance:     input.Distance,
		Fee:          input.Fee,
	}
	if err := repoFactory.DeliveryRepo().Create(ctx, delivery); err != nil {
		return nil, errors.Wrap(err, "failed to insert delivery")
	}

	return delivery, nil
}

// finish records the outcome of a workflow call and returns err unchanged.
func (srv *orderService) finish(ctx context.Context, operation string, err error, attrs ...slog.Attr) error {
	srv.metrics.RecordOrderOperation(operation, err)

	attrs = append(attrs, slog.String("operation", operation))
	if err != nil {
		info := domainerrors.Describe(err)
		attrs = append(attrs,
			slog.String("kind", string(info.Kind)),
			slog.String("code", info.Code),
			slog.String("error", err.Error()),
		)
		srv.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Order workflow failed", attrs...)

		return err
	}

	srv.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Order workflow completed", attrs...)

	return nil
}
