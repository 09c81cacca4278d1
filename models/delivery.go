package models

type Delivery struct {
	DeliveryID      uint        `gorm:"primaryKey;autoIncrement" json:"delivery_id"`
	DeliveryMethod  string      `gorm:"not null" json:"delivery_method"`
	DeliveryAddress string      `gorm:"not null" json:"delivery_address"`
	Status          OrderStatus `gorm:"column:order_status;type:VARCHAR(20);default:'created'" json:"order_status"`
}
