package entities

import "time"

type Order struct {
	OrderID         uint       `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	LockerID        uint       `gorm:"column:locker_id;not null;index" json:"locker_id"`
	BookingID       uint       `gorm:"column:booking_id;not null;index" json:"booking_id"`
	Price           int64      `gorm:"column:price;not null" json:"price"`
	MomentCreated   time.Time  `gorm:"column:moment_created;type:timestamp;not null" json:"moment_created"`
	MomentDelivered *time.Time `gorm:"column:moment_delivered;type:timestamp" json:"moment_delivered"`
	MomentGathered  *time.Time `gorm:"column:moment_gathered;type:timestamp" json:"moment_gathered"`

	Lines []OrderedProduct `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

func (Order) TableName() string {
	return TableOrders
}

type OrderedProduct struct {
	OrderID   uint `gorm:"column:order_id;primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint `gorm:"column:product_id;primaryKey;autoIncrement:false;index" json:"product_id"`
	Amount    int  `gorm:"column:amount;not null" json:"amount"`
}

func (OrderedProduct) TableName() string {
	return TableOrderedProducts
}
