package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/AnthonyBalvin/chicharron-web/internal/domain/entity"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/enum"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/repository"
	"github.com/AnthonyBalvin/chicharron-web/pkg/apperror"
	"github.com/AnthonyBalvin/chicharron-web/pkg/logger"
)

// OrderService owns the order list: loading it, deriving views over it, and
// running mutations. Every successful mutation is followed by an awaited full
// reload; the refreshed snapshot is part of the mutation result, never an
// incidental side effect.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerName     string
	ResponsibleParty string
	Amount           float64
	Quantity         int
}

// SaveInput is the complete editable field set of one order. Edits always
// replace all of these together; partial updates are not supported.
type SaveInput struct {
	CustomerName     string
	ResponsibleParty string
	Amount           float64
	IsPaid           bool
	IsDelivered      bool
}

// validateRequiredFields reports each blank text field on its own, so the
// client can highlight exactly the inputs that need attention.
func validateRequiredFields(customerName, responsibleParty string) error {
	var fieldErrs []apperror.FieldError
	if strings.TrimSpace(customerName) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if strings.TrimSpace(responsibleParty) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "responsible_party", Message: "Responsible party is required"})
	}
	if len(fieldErrs) > 0 {
		return apperror.NewValidationError(fieldErrs)
	}
	return nil
}

// ToCents converts a decimal currency amount to cents, coercing negative or
// non-finite values to zero.
func ToCents(amount float64) int64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return int64(math.Round(amount * 100))
}

// ListOrders loads every order (newest first) and applies the composed
// filter and search views.
func (s *OrderService) ListOrders(ctx context.Context, filter enum.DeliveryFilter, search string) ([]entity.Order, error) {
	orders, err := s.reload(ctx)
	if err != nil {
		return nil, err
	}
	return ApplySearch(ApplyFilter(orders, filter), search), nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewFetchError(err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// CreateOrder registers a new order
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if err := validateRequiredFields(input.CustomerName, input.ResponsibleParty); err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerName:     strings.TrimSpace(input.CustomerName),
		ResponsibleParty: strings.TrimSpace(input.ResponsibleParty),
		Amount:           ToCents(input.Amount),
		Quantity:         input.Quantity,
	}
	if order.Quantity < 1 {
		order.Quantity = 1
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.NewMutationError(err)
	}
	return order, nil
}

// MarkPaid marks one order as paid, then reloads the full list.
func (s *OrderService) MarkPaid(ctx context.Context, id uuid.UUID) ([]entity.Order, error) {
	return s.mutate(ctx, "Order", func() (int64, error) {
		return s.orderRepo.MarkPaid(ctx, id)
	})
}

// MarkDelivered marks one order as delivered, then reloads the full list.
func (s *OrderService) MarkDelivered(ctx context.Context, id uuid.UUID) ([]entity.Order, error) {
	return s.mutate(ctx, "Order", func() (int64, error) {
		return s.orderRepo.MarkDelivered(ctx, id)
	})
}

// DeleteOrder removes one order, then reloads the full list.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) ([]entity.Order, error) {
	return s.mutate(ctx, "Order", func() (int64, error) {
		return s.orderRepo.Delete(ctx, id)
	})
}

// SaveOrder replaces the editable fields of one order, then reloads the
// full list.
func (s *OrderService) SaveOrder(ctx context.Context, id uuid.UUID, input *SaveInput) ([]entity.Order, error) {
	if err := validateRequiredFields(input.CustomerName, input.ResponsibleParty); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"customer_name":     strings.TrimSpace(input.CustomerName),
		"responsible_party": strings.TrimSpace(input.ResponsibleParty),
		"amount":            ToCents(input.Amount),
		"is_paid":           input.IsPaid,
		"is_delivered":      input.IsDelivered,
	}
	return s.mutate(ctx, "Order", func() (int64, error) {
		return s.orderRepo.UpdateFields(ctx, id, fields)
	})
}

// mutate performs exactly one remote write and, only on success, an awaited
// reload. A write that touches no rows is a not-found, not a success.
func (s *OrderService) mutate(ctx context.Context, resource string, write func() (int64, error)) ([]entity.Order, error) {
	affected, err := write()
	if err != nil {
		return nil, apperror.NewMutationError(err)
	}
	if affected == 0 {
		return nil, apperror.NewNotFoundError(resource)
	}
	return s.reload(ctx)
}

func (s *OrderService) reload(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		l := logger.WithComponent("orders")
		l.Error().Err(err).Msg("failed to load orders")
		return nil, apperror.NewFetchError(err)
	}
	return orders, nil
}

// ApplyFilter is a pure view function over an already-loaded list.
func ApplyFilter(orders []entity.Order, filter enum.DeliveryFilter) []entity.Order {
	if filter == enum.DeliveryFilterAll || filter == "" {
		return orders
	}
	wantDelivered := filter == enum.DeliveryFilterDelivered
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsDelivered == wantDelivered {
			out = append(out, o)
		}
	}
	return out
}

// ApplySearch filters by case-insensitive substring match against the
// customer name or the responsible party. An empty term matches everything.
func ApplySearch(orders []entity.Order, term string) []entity.Order {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return orders
	}
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.CustomerName), term) ||
			strings.Contains(strings.ToLower(o.ResponsibleParty), term) {
			out = append(out, o)
		}
	}
	return out
}
