package models

import "time"

// Deal is a named bundle sold at a fixed price independent of its component
// prices. Deals are templates: adding one to an order freezes a snapshot on
// the order line, so later edits here never reach existing orders.
type Deal struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Active    bool    `gorm:"not null;default:true" json:"active"`
	Notes     *string `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []DealItem `gorm:"foreignKey:DealID" json:"items,omitempty"`
}

type DealItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	DealID     uint     `gorm:"not null;index" json:"deal_id"`
	Deal       Deal     `gorm:"foreignKey:DealID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Qty        float64  `gorm:"type:decimal(10,2);not null" json:"qty"`
}
