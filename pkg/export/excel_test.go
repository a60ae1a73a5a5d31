package export_test

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/service"
	"github.com/AnthonyBalvin/chicharron-web/pkg/export"
)

func TestReportWorkbookRoundTrips(t *testing.T) {
	report := &service.ReportSummary{
		TotalSold:         55,
		TotalPaid:         40,
		TotalOutstanding:  15,
		TransactionCount:  4,
		PercentagePaid:    72.7,
		PercentagePending: 27.3,
		TopDebtors: []service.TopDebtor{
			{CustomerName: "Ana", Amount: 15},
		},
	}

	buf, err := export.ReportWorkbook(report)
	if err != nil {
		t.Fatalf("ReportWorkbook: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("workbook buffer is empty")
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Report" {
		t.Fatalf("sheets = %v, want [Report]", got)
	}

	title, err := f.GetCellValue("Report", "A1")
	if err != nil {
		t.Fatalf("reading A1: %v", err)
	}
	if title != "Sales Report" {
		t.Errorf("A1 = %q, want Sales Report", title)
	}

	sold, err := f.GetCellValue("Report", "B2")
	if err != nil {
		t.Fatalf("reading B2: %v", err)
	}
	if sold != "55" {
		t.Errorf("B2 = %q, want 55", sold)
	}

	debtor, err := f.GetCellValue("Report", "A10")
	if err != nil {
		t.Fatalf("reading A10: %v", err)
	}
	if debtor != "Ana" {
		t.Errorf("A10 = %q, want Ana", debtor)
	}
}
