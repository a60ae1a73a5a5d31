package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/service"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/entity"
	"github.com/AnthonyBalvin/chicharron-web/pkg/apperror"
)

func TestComputeDebtorsGroupsAndSorts(t *testing.T) {
	orders := []entity.Order{
		order("Ana", "Luis", 1000, false, false, 1*time.Hour),
		order("Bruno", "Maria", 5000, false, false, 2*time.Hour),
		order("Ana", "Pedro", 2000, false, false, 3*time.Hour),
		order("Ana", "Luis", 500, false, false, 4*time.Hour),
		order("Carla", "Maria", 9000, true, false, 5*time.Hour), // paid, excluded
	}

	debtors := service.ComputeDebtors(orders)
	if len(debtors) != 2 {
		t.Fatalf("got %d debtors, want 2", len(debtors))
	}

	if debtors[0].CustomerName != "Bruno" || debtors[0].Amount != 5000 {
		t.Errorf("top debtor = %s/%d, want Bruno/5000", debtors[0].CustomerName, debtors[0].Amount)
	}
	if debtors[1].CustomerName != "Ana" || debtors[1].Amount != 3500 {
		t.Errorf("second debtor = %s/%d, want Ana/3500", debtors[1].CustomerName, debtors[1].Amount)
	}

	// Responsible parties deduplicate in first-appearance order.
	got := debtors[1].ResponsibleParties
	if len(got) != 2 || got[0] != "Luis" || got[1] != "Pedro" {
		t.Errorf("Ana's responsible parties = %v, want [Luis Pedro]", got)
	}
}

func TestComputeDebtorsTiesKeepFirstSeenOrder(t *testing.T) {
	orders := []entity.Order{
		order("Ana", "Luis", 1000, false, false, 1*time.Hour),
		order("Bruno", "Luis", 1000, false, false, 2*time.Hour),
		order("Carla", "Luis", 1000, false, false, 3*time.Hour),
	}

	debtors := service.ComputeDebtors(orders)
	want := []string{"Ana", "Bruno", "Carla"}
	for i, d := range debtors {
		if d.CustomerName != want[i] {
			t.Fatalf("tie order broken: got %s at %d, want %s", d.CustomerName, i, want[i])
		}
	}
}

func TestDebtorSumsAgreeWithTotalOutstanding(t *testing.T) {
	orders := snapshot()

	var grouped int64
	for _, d := range service.ComputeDebtors(orders) {
		grouped += d.Amount
	}
	total := service.TotalOutstanding(orders)
	if grouped != total {
		t.Fatalf("grouped debt %d != total outstanding %d", grouped, total)
	}

	// The report's outstanding figure is the same quantity in decimals.
	report := service.BuildReport(orders)
	if report.TotalOutstanding != float64(total)/100 {
		t.Fatalf("report outstanding %v != %v", report.TotalOutstanding, float64(total)/100)
	}
}

func TestSettleCustomerClearsDebtExactly(t *testing.T) {
	repo := &fakeOrderRepo{orders: []entity.Order{
		order("Ana", "Luis", 1000, false, false, 1*time.Hour),
		order("Ana", "Pedro", 2000, false, false, 2*time.Hour),
		order("Ana", "Luis", 500, false, false, 3*time.Hour),
		order("Bruno", "Maria", 4000, false, false, 4*time.Hour),
	}}
	svc := service.NewDebtService(repo)

	before, err := svc.GetDebtors(context.Background())
	if err != nil {
		t.Fatalf("GetDebtors: %v", err)
	}
	if before.TotalDebt != 7500 {
		t.Fatalf("total debt before = %d, want 7500", before.TotalDebt)
	}

	after, err := svc.SettleCustomer(context.Background(), "Ana")
	if err != nil {
		t.Fatalf("SettleCustomer: %v", err)
	}

	for _, d := range after.Debtors {
		if d.CustomerName == "Ana" {
			t.Fatal("Ana still appears as a debtor after settling")
		}
	}
	if before.TotalDebt-after.TotalDebt != 3500 {
		t.Fatalf("settling Ana dropped debt by %d, want 3500", before.TotalDebt-after.TotalDebt)
	}
}

func TestSettleUnknownCustomerIsNotFound(t *testing.T) {
	repo := &fakeOrderRepo{orders: []entity.Order{
		order("Ana", "Luis", 1000, true, false, 1*time.Hour),
	}}
	svc := service.NewDebtService(repo)

	_, err := svc.SettleCustomer(context.Background(), "Ana")
	if err == nil {
		t.Fatal("expected not found for a debt-free customer")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Fatalf("expected 404, got %d", apperror.GetAppError(err).Code)
	}
}
