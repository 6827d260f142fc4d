package models

import (
	"time"
)

type Order struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	BranchID      uint    `gorm:"not null;index" json:"branch_id"`
	Branch        Branch  `gorm:"foreignKey:BranchID" json:"-"`
	OrderNo       string  `gorm:"type:varchar(40);uniqueIndex;not null" json:"order_no"`
	DaySeq        int     `gorm:"not null;default:0" json:"day_seq"`
	OrderType     string  `gorm:"type:varchar(20);not null;default:'TAKEAWAY'" json:"order_type"`
	Status        string  `gorm:"type:varchar(20);not null;default:'OPEN';index" json:"status"`
	CustomerID    *uint   `gorm:"index" json:"customer_id,omitempty"`
	CustomerPhone *string `gorm:"type:varchar(30)" json:"customer_phone,omitempty"`
	CashierID     *uint   `gorm:"index" json:"cashier_id,omitempty"`
	CreatedBy     uint    `gorm:"not null" json:"created_by"`
	Notes         *string `gorm:"type:text" json:"notes,omitempty"`

	// Derived money columns; recomputed server-side on every mutation,
	// never trusted from a client. delivery_fee is the one exception a
	// caller may set explicitly (via charges).
	Subtotal      float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"subtotal"`
	DiscountTotal float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount_total"`
	ServiceCharge float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"service_charge"`
	TaxTotal      float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"tax_total"`
	DeliveryFee   float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"delivery_fee"`
	GrandTotal    float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"grand_total"`

	OpenedAt  time.Time  `gorm:"not null" json:"opened_at"`
	KitchenAt *time.Time `json:"kitchen_at,omitempty"`
	ReadyAt   *time.Time `json:"ready_at,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`

	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	Payments   []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}
