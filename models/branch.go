package models

import "time"

type Branch struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Address   *string `gorm:"type:text" json:"address,omitempty"`
	Phone     *string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Active    bool    `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
