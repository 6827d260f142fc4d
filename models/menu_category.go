package models

import "time"

type MenuCategory struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Active    bool   `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
