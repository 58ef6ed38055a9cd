package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const OrderStatusConfirmed = "Confirmed"

// ItemList is a free-form JSON array stored verbatim. Checkout clients send
// whatever item shape their cart uses; the server never interprets it.
type ItemList json.RawMessage

func (l ItemList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return string(l), nil
}

func (l *ItemList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
	case []byte:
		*l = append((*l)[:0], v...)
	case string:
		*l = ItemList(v)
	default:
		return fmt.Errorf("cannot scan %T into ItemList", value)
	}
	return nil
}

func (l ItemList) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("null"), nil
	}
	return l, nil
}

func (l *ItemList) UnmarshalJSON(data []byte) error {
	*l = append((*l)[:0], data...)
	return nil
}

type Order struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `json:"userId"` // free text, not a verified foreign key
	CustomerName string    `json:"customerName"`
	Items        ItemList  `gorm:"type:jsonb" json:"items"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `gorm:"default:'Confirmed'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
