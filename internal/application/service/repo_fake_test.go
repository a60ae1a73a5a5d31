package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/AnthonyBalvin/chicharron-web/internal/domain/entity"
)

// fakeOrderRepo is an in-memory stand-in for the remote store.
type fakeOrderRepo struct {
	orders    []entity.Order
	listErr   error
	mutateErr error
	listCalls int
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Order, len(f.orders))
	copy(out, f.orders)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out, nil
}

func (f *fakeOrderRepo) ListUnpaid(ctx context.Context) ([]entity.Order, error) {
	all, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(all))
	for _, o := range all {
		if !o.IsPaid {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) MarkPaid(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.mutateErr != nil {
		return 0, f.mutateErr
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].IsPaid = true
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeOrderRepo) MarkDelivered(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.mutateErr != nil {
		return 0, f.mutateErr
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].IsDelivered = true
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeOrderRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	if f.mutateErr != nil {
		return 0, f.mutateErr
	}
	for i := range f.orders {
		if f.orders[i].ID != id {
			continue
		}
		if v, ok := fields["customer_name"].(string); ok {
			f.orders[i].CustomerName = v
		}
		if v, ok := fields["responsible_party"].(string); ok {
			f.orders[i].ResponsibleParty = v
		}
		if v, ok := fields["amount"].(int64); ok {
			f.orders[i].Amount = v
		}
		if v, ok := fields["is_paid"].(bool); ok {
			f.orders[i].IsPaid = v
		}
		if v, ok := fields["is_delivered"].(bool); ok {
			f.orders[i].IsDelivered = v
		}
		return 1, nil
	}
	return 0, nil
}

func (f *fakeOrderRepo) SettleCustomer(ctx context.Context, customerName string) (int64, error) {
	if f.mutateErr != nil {
		return 0, f.mutateErr
	}
	var affected int64
	for i := range f.orders {
		if f.orders[i].CustomerName == customerName && !f.orders[i].IsPaid {
			f.orders[i].IsPaid = true
			affected++
		}
	}
	return affected, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.mutateErr != nil {
		return 0, f.mutateErr
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

var errRemote = errors.New("connection reset by peer")

// order builds a test order; cents keeps amounts exact.
func order(customer, responsible string, cents int64, paid, delivered bool, age time.Duration) entity.Order {
	return entity.Order{
		ID:               uuid.New(),
		CustomerName:     customer,
		ResponsibleParty: responsible,
		Amount:           cents,
		Quantity:         1,
		IsPaid:           paid,
		IsDelivered:      delivered,
		CreatedAt:        time.Now().Add(-age),
	}
}
