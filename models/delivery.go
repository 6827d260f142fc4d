package models

import "time"

// Delivery holds rider/address details for DELIVERY orders; one row per order.
type Delivery struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"uniqueIndex;not null" json:"order_id"`
	Order         Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CustomerName  *string `gorm:"type:varchar(255)" json:"customer_name,omitempty"`
	CustomerPhone *string `gorm:"type:varchar(30)" json:"customer_phone,omitempty"`
	AddressLine1  *string `gorm:"type:varchar(255)" json:"address_line1,omitempty"`
	AddressLine2  *string `gorm:"type:varchar(255)" json:"address_line2,omitempty"`
	Area          *string `gorm:"type:varchar(100)" json:"area,omitempty"`
	City          *string `gorm:"type:varchar(100)" json:"city,omitempty"`
	Notes         *string `gorm:"type:text" json:"notes,omitempty"`
	RiderName     *string `gorm:"type:varchar(255)" json:"rider_name,omitempty"`
	RiderPhone    *string `gorm:"type:varchar(30)" json:"rider_phone,omitempty"`
	Status        *string `gorm:"type:varchar(20)" json:"status,omitempty"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
