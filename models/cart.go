package models

type Cart struct {
	CartID uint       `gorm:"primaryKey;autoIncrement" json:"cart_id"`
	UserID uint       `gorm:"not null;index" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"cartitems"`
}

type CartItem struct {
	CartItemID uint    `gorm:"primaryKey;autoIncrement" json:"cart_item_id"`
	CartID     uint    `gorm:"not null;index" json:"cart_id"`
	ProductID  uint    `gorm:"not null" json:"product_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Product    Product `gorm:"foreignKey:ProductID" json:"product"`
}
