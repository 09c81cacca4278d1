package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "created"    // Order placed
	OrderStatusProcessing OrderStatus = "processing" // Being assembled
	OrderStatusShipped    OrderStatus = "shipped"    // Handed to the carrier
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received it
	OrderStatusCancelled  OrderStatus = "cancelled"  // Terminal, only deletable state
)

type Order struct {
	OrderID      uint            `gorm:"primaryKey;autoIncrement" json:"order_id"`
	CartID       uint            `gorm:"not null" json:"cart_id"`
	DeliveryID   uint            `gorm:"not null" json:"delivery_id"`
	PaymentID    uint            `gorm:"not null" json:"payment_id"`
	TotalPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_price"`
	DeliveryDate time.Time       `gorm:"not null" json:"delivery_date"`
	Status       OrderStatus     `gorm:"column:order_status;type:VARCHAR(20);default:'created'" json:"order_status"`
	Cart         Cart            `gorm:"foreignKey:CartID" json:"cart,omitempty"`
	Delivery     Delivery        `gorm:"foreignKey:DeliveryID" json:"delivery,omitempty"`
	Payment      Payment         `gorm:"foreignKey:PaymentID" json:"payment,omitempty"`
}
