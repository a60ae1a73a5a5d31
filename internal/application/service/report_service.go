package service

import (
	"context"
	"math"

	"github.com/AnthonyBalvin/chicharron-web/internal/domain/entity"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/repository"
	"github.com/AnthonyBalvin/chicharron-web/pkg/apperror"
)

const topDebtorsLimit = 5
const recentPaymentsLimit = 5

// TopDebtor is the amount-only debtor entry shown on the report.
type TopDebtor struct {
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
}

// ReportSummary represents sales and collection statistics derived from a
// single scan of the full order list.
type ReportSummary struct {
	TotalSold         float64        `json:"total_sold"`
	TotalPaid         float64        `json:"total_paid"`
	TotalOutstanding  float64        `json:"total_outstanding"`
	TransactionCount  int            `json:"transaction_count"`
	PercentagePaid    float64        `json:"percentage_paid"`
	PercentagePending float64        `json:"percentage_pending"`
	TopDebtors        []TopDebtor    `json:"top_debtors"`
	RecentPayments    []entity.Order `json:"recent_payments"`
}

// ReportService derives the sales report from the order list.
type ReportService struct {
	orderRepo repository.OrderRepository
}

// NewReportService creates a new report service
func NewReportService(orderRepo repository.OrderRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo}
}

// BuildReport computes the report from one snapshot, assumed to be in
// newest-first order.
func BuildReport(orders []entity.Order) *ReportSummary {
	var sold, paid int64
	recent := make([]entity.Order, 0, recentPaymentsLimit)

	for _, o := range orders {
		sold += o.Amount
		if o.IsPaid {
			paid += o.Amount
			if len(recent) < recentPaymentsLimit {
				recent = append(recent, o)
			}
		}
	}

	pctPaid := 0.0
	if sold > 0 {
		pctPaid = roundOneDecimal(float64(paid) / float64(sold) * 100)
	}
	// Pending is displayed as the complement of paid, under the same
	// rounding, so the two always add up to 100.
	pctPending := roundOneDecimal(100 - pctPaid)

	debtors := ComputeDebtors(orders)
	if len(debtors) > topDebtorsLimit {
		debtors = debtors[:topDebtorsLimit]
	}
	top := make([]TopDebtor, len(debtors))
	for i, d := range debtors {
		top[i] = TopDebtor{
			CustomerName: d.CustomerName,
			Amount:       float64(d.Amount) / 100,
		}
	}

	return &ReportSummary{
		TotalSold:         float64(sold) / 100,
		TotalPaid:         float64(paid) / 100,
		TotalOutstanding:  float64(sold-paid) / 100,
		TransactionCount:  len(orders),
		PercentagePaid:    pctPaid,
		PercentagePending: pctPending,
		TopDebtors:        top,
		RecentPayments:    recent,
	}
}

// GetReport loads the full order list and builds the report.
func (s *ReportService) GetReport(ctx context.Context) (*ReportSummary, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, apperror.NewFetchError(err)
	}
	return BuildReport(orders), nil
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
