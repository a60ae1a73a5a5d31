// Package export renders report summaries to spreadsheet files.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/service"
)

const sheet = "Report"

// ReportWorkbook renders a report summary to an .xlsx workbook.
func ReportWorkbook(report *service.ReportSummary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	rows := [][]interface{}{
		{"Sales Report", ""},
		{"Total sold", report.TotalSold},
		{"Total paid", report.TotalPaid},
		{"Outstanding", report.TotalOutstanding},
		{"Transactions", report.TransactionCount},
		{"Paid %", report.PercentagePaid},
		{"Pending %", report.PercentagePending},
		{"", ""},
		{"Top debtors", ""},
	}
	for _, d := range report.TopDebtors {
		rows = append(rows, []interface{}{d.CustomerName, d.Amount})
	}
	rows = append(rows, []interface{}{"", ""}, []interface{}{"Recent payments", ""})
	for _, o := range report.RecentPayments {
		rows = append(rows, []interface{}{o.CustomerName, o.AmountDecimal()})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
