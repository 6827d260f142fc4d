package models

import (
	"time"
)

// Payment is one tender applied to an order. Rows are append-only: a wrong
// tender is corrected by a counter entry, never by update or delete.
type Payment struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	Order     Order   `json:"-" gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Method    string  `json:"method" gorm:"type:varchar(10);not null;default:'CASH'"`
	Amount    float64 `json:"amount" gorm:"type:decimal(10,2);not null"`
	Reference *string `json:"reference,omitempty" gorm:"type:varchar(100)"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
}
