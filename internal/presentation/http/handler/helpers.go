package handler

import "strconv"

// formatAmount renders a decimal amount the way a form field would carry it.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
