package models

import "github.com/shopspring/decimal"

type Product struct {
	ProductID   uint            `gorm:"primaryKey;autoIncrement" json:"product_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Info        string          `json:"info"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Categories  []Category      `gorm:"many2many:product_category_connections;joinForeignKey:product_id;joinReferences:category_id" json:"categories,omitempty"`
}
