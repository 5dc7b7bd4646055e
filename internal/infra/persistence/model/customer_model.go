package model

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(255);not null"`
	Phone string `gorm:"type:varchar(32);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// EmployeeModel is the GORM-specific struct for the 'employees' table.
type EmployeeModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ShipperModel is the GORM-specific struct for the 'shippers' table.
type ShipperModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Info string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShipperModel) TableName() string {
	return "shippers"
}
