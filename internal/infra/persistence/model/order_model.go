package model

import "time"

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	DishRequest string         `gorm:"type:text;not null"`
	TotalPrice  float64        `gorm:"not null;check:chk_orders_total_price,total_price > 0"`
	CreatedAt   time.Time      `gorm:"not null;index"`
	Status      string         `gorm:"type:varchar(16);not null;index;check:chk_orders_status,status IN ('Pending','Preparing','Ready','Delivered','Cancelled')"`
	CustomerID  int64          `gorm:"not null;index"`
	Customer    *CustomerModel `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' join table
// between orders and dishes.
type OrderItemModel struct {
	ID        int64       `gorm:"primaryKey;autoIncrement"`
	OrderID   int64       `gorm:"not null;index"`
	DishID    int64       `gorm:"not null;index"`
	Quantity  int         `gorm:"not null;check:chk_order_items_quantity,quantity > 0"`
	UnitPrice float64     `gorm:"not null"`
	Order     *OrderModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Dish      *DishModel  `gorm:"foreignKey:DishID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// BillModel is the GORM-specific struct for the 'bills' table.
// The unique order_id index enforces one bill per order.
type BillModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	ReceiptNo   string         `gorm:"type:varchar(36);not null;uniqueIndex"`
	OrderID     int64          `gorm:"not null;uniqueIndex"`
	EmployeeID  int64          `gorm:"not null;index"`
	ShipperID   int64          `gorm:"not null;index"`
	TotalAmount float64        `gorm:"not null;check:chk_bills_total_amount,total_amount >= 0"`
	BilledAt    time.Time      `gorm:"not null"`
	Order       *OrderModel    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Employee    *EmployeeModel `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Shipper     *ShipperModel  `gorm:"foreignKey:ShipperID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (BillModel) TableName() string {
	return "bills"
}

// DeliveryModel is the GORM-specific struct for the 'deliveries' table.
// The unique order_id index enforces one delivery per order.
type DeliveryModel struct {
	ID           int64         `gorm:"primaryKey;autoIncrement"`
	OrderID      int64         `gorm:"not null;uniqueIndex"`
	ShipperID    int64         `gorm:"not null;index"`
	DeliveryTime time.Time     `gorm:"not null"`
	Address      string        `gorm:"type:text;not null"`
	Distance     float64       `gorm:"not null;check:chk_deliveries_distance,distance >= 0"`
	Fee          float64       `gorm:"not null;check:chk_deliveries_fee,fee >= 0"`
	Order        *OrderModel   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Shipper      *ShipperModel `gorm:"foreignKey:ShipperID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// All lists every model in dependency order for migrations and code generation.
func All() []any {
	return []any{
		&CustomerModel{},
		&EmployeeModel{},
		&ShipperModel{},
		&DishModel{},
		&IngredientModel{},
		&DishIngredientModel{},
		&OrderModel{},
		&OrderItemModel{},
		&BillModel{},
		&DeliveryModel{},
	}
}
