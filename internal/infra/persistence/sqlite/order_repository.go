package sqlite

import (
	"context"
	"time"

	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/repository"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const orderDetailsQuery = `SELECT o.id, o.dish_request, o.total_price, o.created_at, o.status, o.customer_id,
	c.name AS customer_name, c.phone AS customer_phone
	FROM orders o
	JOIN customers c ON c.id = o.customer_id`

// orderDetailsRow is one row of orderDetailsQuery.
type orderDetailsRow struct {
	ID            int64
	DishRequest   string
	TotalPrice    float64
	CreatedAt     time.Time
	Status        string
	CustomerID    int64
	CustomerName  string
	CustomerPhone string
}

// orderItemRow is an order line joined with its dish name.
type orderItemRow struct {
	ID        int64
	OrderID   int64
	DishID    int64
	DishName  string
	Quantity  int
	UnitPrice float64
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	exec *Executor
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{exec: NewExecutor(db)}
}

// Create inserts the order row then each line item. Run it inside a transaction so
// a failing item leaves no order behind.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if err := repo.exec.Create(ctx, orderM); err != nil {
		return err
	}

	order.ID = orderM.ID

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		itemM := &model.OrderItemModel{
			OrderID:   item.OrderID,
			DishID:    item.DishID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		if err := repo.exec.Create(ctx, itemM); err != nil {
			return err
		}

		item.ID = itemM.ID
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.exec.ReadOne(ctx, &orderM,
		`SELECT id, dish_request, total_price, created_at, status, customer_id
		FROM orders WHERE id = ? LIMIT 1`, id); err != nil {
		return nil, notFoundAs(err, repository.ErrOrderNotFound)
	}

	items, err := repo.FindItems(ctx, id)
	if err != nil {
		return nil, err
	}

	order := toOrderDomain(&orderM)
	order.Items = items

	return order, nil
}

func (repo *orderRepository) FindItems(ctx context.Context, orderID int64) ([]entity.OrderItem, error) {
	var rows []*orderItemRow
	if err := repo.exec.ReadMany(ctx, &rows,
		`SELECT oi.id, oi.order_id, oi.dish_id, d.name AS dish_name, oi.quantity, oi.unit_price
		FROM order_items oi
		JOIN dishes d ON d.id = oi.dish_id
		WHERE oi.order_id = ?
		ORDER BY oi.id`, orderID); err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.OrderItem{
			ID:        row.ID,
			OrderID:   row.OrderID,
			DishID:    row.DishID,
			DishName:  row.DishName,
			Quantity:  row.Quantity,
			UnitPrice: row.UnitPrice,
		})
	}

	return items, nil
}

func (repo *orderRepository) FindDetailsByID(ctx context.Context, id int64) (*entity.OrderDetails, error) {
	var row orderDetailsRow
	if err := repo.exec.ReadOne(ctx, &row, orderDetailsQuery+" WHERE o.id = ? LIMIT 1", id); err != nil {
		return nil, notFoundAs(err, repository.ErrOrderNotFound)
	}

	items, err := repo.FindItems(ctx, id)
	if err != nil {
		return nil, err
	}

	details := toOrderDetailsDomain(&row)
	details.Items = items

	return details, nil
}

// FindAllDetails lists every order without line items, newest first.
func (repo *orderRepository) FindAllDetails(ctx context.Context) ([]*entity.OrderDetails, error) {
	return repo.findDetails(ctx, orderDetailsQuery+" ORDER BY o.created_at DESC, o.id DESC")
}

func (repo *orderRepository) FindDetailsByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.OrderDetails, error) {
	return repo.findDetails(ctx,
		orderDetailsQuery+" WHERE o.status = ? ORDER BY o.created_at DESC, o.id DESC", string(status))
}

// UpdateStatus is a compare-and-set on the status column.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, expected, next entity.OrderStatus) (bool, error) {
	res, err := repo.exec.Write(ctx,
		"UPDATE orders SET status = ? WHERE id = ? AND status = ?",
		string(next), id, string(expected))
	if err != nil {
		return false, err
	}

	return res.RowsAffected > 0, nil
}

func (repo *orderRepository) findDetails(ctx context.Context, query string, args ...any) ([]*entity.OrderDetails, error) {
	var rows []*orderDetailsRow
	if err := repo.exec.ReadMany(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	orders := make([]*entity.OrderDetails, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderDetailsDomain(row))
	}

	return orders, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:          data.ID,
		DishRequest: data.DishRequest,
		TotalPrice:  data.TotalPrice,
		CreatedAt:   data.CreatedAt.UTC(),
		Status:      entity.OrderStatus(data.Status),
		CustomerID:  data.CustomerID,
	}
}

func toOrderDetailsDomain(row *orderDetailsRow) *entity.OrderDetails {
	return &entity.OrderDetails{
		Order: entity.Order{
			ID:          row.ID,
			DishRequest: row.DishRequest,
			TotalPrice:  row.TotalPrice,
			CreatedAt:   row.CreatedAt.UTC(),
			Status:      entity.OrderStatus(row.Status),
			CustomerID:  row.CustomerID,
		},
		CustomerName:  row.CustomerName,
		CustomerPhone: row.CustomerPhone,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:          data.ID,
		DishRequest: data.DishRequest,
		TotalPrice:  data.TotalPrice,
		CreatedAt:   data.CreatedAt.UTC(),
		Status:      string(data.Status),
		CustomerID:  data.CustomerID,
	}
}
