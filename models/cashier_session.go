package models

import (
	"time"
)

// CashierSession is one bounded shift at the till. At most one OPEN session
// per cashier; cash_sales/payouts/closing_balance are filled at close time.
type CashierSession struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	BranchID     uint    `gorm:"not null;index" json:"branch_id"`
	CashierID    uint    `gorm:"not null;index" json:"cashier_id"`
	Cashier      User    `gorm:"foreignKey:CashierID" json:"-"`
	Status       string  `gorm:"type:varchar(10);not null;default:'OPEN'" json:"status"`
	OpeningFloat float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"opening_float"`
	CashSales    float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"cash_sales"`
	Payouts      float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"payouts"`
	// closing_balance = opening_float + cash_sales - payouts
	ClosingBalance float64    `gorm:"type:decimal(10,2);not null;default:0.00" json:"closing_balance"`
	OpenedAt       time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
