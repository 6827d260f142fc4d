package models

import "time"

type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Username  string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PinHash   string  `gorm:"type:varchar(255);not null" json:"-"`
	Role      string  `gorm:"type:varchar(20);not null" json:"role"`
	BranchID  *uint   `gorm:"index" json:"branch_id,omitempty"`
	Branch    *Branch `gorm:"foreignKey:BranchID" json:"-"`
	Active    bool    `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
