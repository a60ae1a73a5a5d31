// Package board is the order-list manager: it owns the in-memory snapshot
// of the order list, the filter and search view state, the confirmation
// gate in front of every mutation, and the transient success notice.
package board

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/flow"
	"github.com/AnthonyBalvin/chicharron-web/internal/application/service"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/entity"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/enum"
	"github.com/AnthonyBalvin/chicharron-web/pkg/logger"
)

// Phase is where the board stands in its pending-action cycle:
// idle, waiting on a confirmation, or running a confirmed mutation.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseConfirming Phase = "confirming"
	PhaseMutating   Phase = "mutating"
)

// View is a renderable snapshot of the board.
type View struct {
	Orders    []entity.Order      `json:"orders"`
	Filter    enum.DeliveryFilter `json:"filter"`
	Search    string              `json:"search"`
	Loading   bool                `json:"loading"`
	Phase     Phase               `json:"phase"`
	Pending   *flow.Prompt        `json:"pending_confirmation,omitempty"`
	Notice    string              `json:"notice,omitempty"`
	LastError string              `json:"last_error,omitempty"`
}

// Board serializes all view-state access behind one mutex. The modeled flow
// is single-threaded and event-driven; the lock only guards against
// concurrent HTTP requests reaching the same instance.
type Board struct {
	mu     sync.Mutex
	orders *service.OrderService
	debts  *service.DebtService
	gate   flow.Gate
	notice *flow.Notice
	now    func() time.Time

	snapshot []entity.Order
	loading  bool
	filter   enum.DeliveryFilter
	search   string
	phase    Phase
	lastErr  string
}

// New creates a board over the order and debt services.
func New(orders *service.OrderService, debts *service.DebtService, noticeTTL time.Duration) *Board {
	return &Board{
		orders: orders,
		debts:  debts,
		notice: flow.NewNotice(noticeTTL),
		now:    time.Now,
		filter: enum.DeliveryFilterAll,
		phase:  PhaseIdle,
	}
}

// Refresh reloads the full order list. On failure the prior snapshot stays
// in place; the loading flag is cleared either way.
func (b *Board) Refresh(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reloadLocked(ctx)
}

func (b *Board) reloadLocked(ctx context.Context) error {
	b.loading = true
	defer func() { b.loading = false }()

	orders, err := b.orders.ListOrders(ctx, enum.DeliveryFilterAll, "")
	if err != nil {
		l := logger.WithComponent("board")
		l.Error().Err(err).Msg("refresh failed, keeping stale snapshot")
		return err
	}
	b.snapshot = orders
	return nil
}

// SetFilter changes the delivery filter view.
func (b *Board) SetFilter(filter enum.DeliveryFilter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter = filter
}

// SetSearch changes the search term view.
func (b *Board) SetSearch(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.search = term
}

// Visible returns the snapshot with the filter and search composed over it.
func (b *Board) Visible() []entity.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	return service.ApplySearch(service.ApplyFilter(b.snapshot, b.filter), b.search)
}

// State returns the full renderable view.
func (b *Board) State() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := View{
		Orders:    service.ApplySearch(service.ApplyFilter(b.snapshot, b.filter), b.search),
		Filter:    b.filter,
		Search:    b.search,
		Loading:   b.loading,
		Phase:     b.phase,
		LastError: b.lastErr,
	}
	if prompt, ok := b.gate.Pending(); ok {
		v.Pending = &prompt
	}
	if msg, ok := b.notice.Current(b.now()); ok {
		v.Notice = msg
	}
	return v
}

// Phase reports the pending-action phase.
func (b *Board) Phase() Phase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase
}

// RequestMarkPaid asks for confirmation before marking one order as paid.
func (b *Board) RequestMarkPaid(id uuid.UUID) {
	b.request(flow.KindWarning, "Mark as paid",
		"Are you sure you want to mark this order as paid?",
		"Order marked as paid", func(ctx context.Context) ([]entity.Order, error) {
			return b.orders.MarkPaid(ctx, id)
		})
}

// RequestMarkDelivered asks for confirmation before marking one order as
// delivered.
func (b *Board) RequestMarkDelivered(id uuid.UUID) {
	b.request(flow.KindWarning, "Mark as delivered",
		"Are you sure you want to mark this order as delivered?",
		"Order marked as delivered", func(ctx context.Context) ([]entity.Order, error) {
			return b.orders.MarkDelivered(ctx, id)
		})
}

// RequestDelete asks for confirmation before deleting one order.
func (b *Board) RequestDelete(id uuid.UUID) {
	b.request(flow.KindDanger, "Delete order",
		"This action cannot be undone. Are you sure you want to delete this order?",
		"Order deleted", func(ctx context.Context) ([]entity.Order, error) {
			return b.orders.DeleteOrder(ctx, id)
		})
}

// RequestSettle asks for confirmation before settling every unpaid order of
// one customer.
func (b *Board) RequestSettle(customerName string) {
	b.request(flow.KindWarning, "Settle debt",
		fmt.Sprintf("Settle all outstanding debt for %s?", customerName),
		"Debt settled", func(ctx context.Context) ([]entity.Order, error) {
			if _, err := b.debts.SettleCustomer(ctx, customerName); err != nil {
				return nil, err
			}
			return b.orders.ListOrders(ctx, enum.DeliveryFilterAll, "")
		})
}

// RequestSave validates a staged edit and, if it passes, asks for
// confirmation before replacing the order's editable fields. Validation
// failures are rejected here, before any confirmation or network call.
func (b *Board) RequestSave(id uuid.UUID, form *flow.EditForm) error {
	input, err := form.Submit()
	if err != nil {
		return err
	}
	b.request(flow.KindWarning, "Save changes",
		"Save the changes to this order?",
		"Order updated", func(ctx context.Context) ([]entity.Order, error) {
			return b.orders.SaveOrder(ctx, id, input)
		})
	return nil
}

// request opens the confirmation gate, replacing any pending confirmation.
func (b *Board) request(kind flow.Kind, title, message, successMsg string, mutate func(ctx context.Context) ([]entity.Order, error)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.phase = PhaseConfirming
	b.gate.Request(kind, title, message, func(ctx context.Context) error {
		b.phase = PhaseMutating
		orders, err := mutate(ctx)
		b.phase = PhaseIdle
		if err != nil {
			b.lastErr = err.Error()
			return err
		}
		b.snapshot = orders
		b.lastErr = ""
		b.notice.Show(successMsg, b.now())
		return nil
	})
}

// Confirm runs the pending action: exactly one remote mutation followed by
// an awaited reload. On failure the error message is surfaced and the prior
// snapshot stays visible.
func (b *Board) Confirm(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	err := b.gate.Confirm(ctx)
	b.phase = PhaseIdle
	return err
}

// Cancel closes the pending confirmation without running anything.
func (b *Board) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gate.Cancel()
	b.phase = PhaseIdle
}
