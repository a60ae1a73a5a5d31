package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/AnthonyBalvin/chicharron-web/internal/domain/entity"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/repository"
	"github.com/AnthonyBalvin/chicharron-web/pkg/apperror"
)

// Debtor is a customer with at least one unpaid order: their summed owed
// amount and everyone who sold to them.
type Debtor struct {
	CustomerName string `json:"customer_name"`
	Amount       int64  `json:"-"` // cents
	// ResponsibleParties keeps first-appearance order, deduplicated.
	ResponsibleParties []string `json:"responsible_parties"`
}

// MarshalJSON converts cents to decimal for API responses
func (d Debtor) MarshalJSON() ([]byte, error) {
	type Alias Debtor
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(d),
		Amount: float64(d.Amount) / 100,
	})
}

// DebtSummary is the debt view over one snapshot of the order list.
type DebtSummary struct {
	Debtors []Debtor `json:"debtors"`
	// TotalDebt is summed over the unpaid orders directly, not from the
	// grouped debtors; the two always agree.
	TotalDebt int64 `json:"-"`
}

// MarshalJSON converts cents to decimal for API responses
func (s DebtSummary) MarshalJSON() ([]byte, error) {
	type Alias DebtSummary
	return json.Marshal(&struct {
		Alias
		TotalDebt float64 `json:"total_debt"`
	}{
		Alias:     Alias(s),
		TotalDebt: float64(s.TotalDebt) / 100,
	})
}

// DebtService derives the per-customer outstanding balances and settles them.
type DebtService struct {
	orderRepo repository.OrderRepository
}

// NewDebtService creates a new debt service
func NewDebtService(orderRepo repository.OrderRepository) *DebtService {
	return &DebtService{orderRepo: orderRepo}
}

// ComputeDebtors groups the unpaid subset of a snapshot by customer, summing
// amounts and collecting responsible parties in first-appearance order. The
// result is sorted by owed amount descending; ties keep first-seen order.
func ComputeDebtors(orders []entity.Order) []Debtor {
	index := make(map[string]int)
	debtors := make([]Debtor, 0)

	for _, o := range orders {
		if o.IsPaid {
			continue
		}
		i, seen := index[o.CustomerName]
		if !seen {
			index[o.CustomerName] = len(debtors)
			debtors = append(debtors, Debtor{
				CustomerName:       o.CustomerName,
				Amount:             o.Amount,
				ResponsibleParties: []string{o.ResponsibleParty},
			})
			continue
		}
		debtors[i].Amount += o.Amount
		if !containsString(debtors[i].ResponsibleParties, o.ResponsibleParty) {
			debtors[i].ResponsibleParties = append(debtors[i].ResponsibleParties, o.ResponsibleParty)
		}
	}

	sort.SliceStable(debtors, func(a, b int) bool {
		return debtors[a].Amount > debtors[b].Amount
	})
	return debtors
}

// TotalOutstanding sums the amounts of every unpaid order in a snapshot.
func TotalOutstanding(orders []entity.Order) int64 {
	var total int64
	for _, o := range orders {
		if !o.IsPaid {
			total += o.Amount
		}
	}
	return total
}

// GetDebtors loads the unpaid orders and derives the debt view.
func (s *DebtService) GetDebtors(ctx context.Context) (*DebtSummary, error) {
	orders, err := s.orderRepo.ListUnpaid(ctx)
	if err != nil {
		return nil, apperror.NewFetchError(err)
	}
	return &DebtSummary{
		Debtors:   ComputeDebtors(orders),
		TotalDebt: TotalOutstanding(orders),
	}, nil
}

// SettleCustomer marks every unpaid order of one customer as paid in a
// single filtered update, then reloads the debt view.
func (s *DebtService) SettleCustomer(ctx context.Context, customerName string) (*DebtSummary, error) {
	affected, err := s.orderRepo.SettleCustomer(ctx, customerName)
	if err != nil {
		return nil, apperror.NewMutationError(err)
	}
	if affected == 0 {
		return nil, apperror.NewNotFoundError("Debtor")
	}
	return s.GetDebtors(ctx)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
