package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents a single customer transaction (a "pedido") with its
// payment and delivery status.
type Order struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName     string         `gorm:"size:255;not null;index" json:"customer_name"`
	ResponsibleParty string         `gorm:"size:255;not null" json:"responsible_party"`
	Amount           int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Quantity         int            `gorm:"default:1" json:"quantity"`
	IsPaid           bool           `gorm:"default:false;index" json:"is_paid"`
	IsDelivered      bool           `gorm:"default:false" json:"is_delivered"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(o),
		Amount: float64(o.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Quantity < 1 {
		o.Quantity = 1
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// AmountDecimal returns the order amount as a decimal currency value
func (o *Order) AmountDecimal() float64 {
	return float64(o.Amount) / 100
}
