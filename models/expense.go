package models

import "time"

type ExpenseCategory struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(100);not null" json:"name"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}

type Expense struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	BranchID      uint            `gorm:"not null;index" json:"branch_id"`
	CategoryID    uint            `gorm:"not null;index" json:"category_id"`
	Category      ExpenseCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Amount        float64         `gorm:"type:decimal(10,2);not null" json:"amount"`
	Vendor        *string         `gorm:"type:varchar(255)" json:"vendor,omitempty"`
	Notes         *string         `gorm:"type:text" json:"notes,omitempty"`
	AttachmentURL *string         `gorm:"type:varchar(500)" json:"attachment_url,omitempty"`
	CreatedBy     uint            `gorm:"not null" json:"created_by"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}
