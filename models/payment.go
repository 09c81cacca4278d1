package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"   // Created with the order, not yet charged
	PaymentStatusCompleted PaymentStatus = "completed" // Charge went through
	PaymentStatusFailed    PaymentStatus = "failed"    // Charge attempt failed
	PaymentStatusRefunded  PaymentStatus = "refunded"  // Money returned to customer
)

type Payment struct {
	PaymentID       uint          `gorm:"primaryKey;autoIncrement" json:"payment_id"`
	TransactionDate time.Time     `gorm:"not null" json:"transaction_date"`
	PaymentMethod   string        `gorm:"not null" json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
}
