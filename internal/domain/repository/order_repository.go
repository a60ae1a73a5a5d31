package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnthonyBalvin/chicharron-web/internal/domain/entity"
)

// OrderRepository defines the interface for order data operations against
// the remote store. Mutations report the number of rows touched so callers
// can distinguish a no-op from a hit.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// List returns every order, newest first.
	List(ctx context.Context) ([]entity.Order, error)
	// ListUnpaid returns the unpaid subset, newest first.
	ListUnpaid(ctx context.Context) ([]entity.Order, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (int64, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) (int64, error)
	// UpdateFields replaces the full editable field set of one order.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	// SettleCustomer marks every unpaid order of one customer as paid in a
	// single filtered update.
	SettleCustomer(ctx context.Context, customerName string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
