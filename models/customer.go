package models

import (
	"time"
)

// Customer is a weak reference resolved (or created) by phone number at
// order creation.
type Customer struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string  `gorm:"type:varchar(30);uniqueIndex;not null" json:"phone"`
	Notes     *string `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
