package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order  Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	IsDeal bool  `gorm:"not null;default:false" json:"is_deal"`
	// ItemID is nil for deal lines; DealID is nil for plain lines and for
	// ad-hoc deals built at the counter.
	ItemID   *uint     `gorm:"index" json:"item_id,omitempty"`
	MenuItem *MenuItem `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	DealID   *uint     `gorm:"index" json:"deal_id,omitempty"`

	// Frozen at insert time; later renames or price edits of the source
	// menu item or deal never touch existing lines.
	ItemNameSnapshot string        `gorm:"type:varchar(500);not null" json:"item_name_snapshot"`
	DealSnapshot     *DealSnapshot `gorm:"type:text" json:"deal_snapshot,omitempty"`

	Qty          float64 `gorm:"type:decimal(10,2);not null" json:"qty"`
	UnitPrice    float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LineDiscount float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"line_discount"`
	LineTotal    float64 `gorm:"type:decimal(10,2);not null" json:"line_total"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// DealComponent is one informational entry of a frozen deal: component
// quantities are never separately priced.
type DealComponent struct {
	MenuItemID uint    `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Qty        float64 `json:"qty"`
}

// DealSnapshot is the structured copy of a deal taken when it is added to an
// order. Version marks the serialized schema so old rows stay readable.
type DealSnapshot struct {
	Version int             `json:"v"`
	Name    string          `json:"name"`
	Price   float64         `json:"price"`
	Items   []DealComponent `json:"items"`
}

const dealSnapshotVersion = 1

func (s DealSnapshot) Value() (driver.Value, error) {
	if s.Version == 0 {
		s.Version = dealSnapshotVersion
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *DealSnapshot) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into DealSnapshot", value)
	}
}
