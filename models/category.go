package models

type Category struct {
	CategoryID   uint      `gorm:"primaryKey;autoIncrement" json:"category_id"`
	CategoryName string    `gorm:"unique;not null" json:"category_name"`
	Products     []Product `gorm:"many2many:product_category_connections;joinForeignKey:category_id;joinReferences:product_id" json:"products,omitempty"`
}
