package flow

import (
	"strconv"
	"strings"

	"github.com/AnthonyBalvin/chicharron-web/internal/application/service"
	"github.com/AnthonyBalvin/chicharron-web/internal/domain/entity"
	"github.com/AnthonyBalvin/chicharron-web/pkg/apperror"
)

// EditForm stages the editable fields of one order. Submit always emits the
// complete field set; partial updates are not supported.
type EditForm struct {
	CustomerName     string
	ResponsibleParty string
	Amount           string // raw user input, parsed on submit
	IsPaid           bool
	IsDelivered      bool
}

// BeginEdit stages a full copy of an order's editable fields.
func BeginEdit(order *entity.Order) *EditForm {
	return &EditForm{
		CustomerName:     order.CustomerName,
		ResponsibleParty: order.ResponsibleParty,
		Amount:           strconv.FormatFloat(order.AmountDecimal(), 'f', -1, 64),
		IsPaid:           order.IsPaid,
		IsDelivered:      order.IsDelivered,
	}
}

// Submit validates the staged fields and emits the replacement payload.
// Required text fields reject the submit before any network call; an empty,
// invalid, or negative amount coerces to 0.
func (f *EditForm) Submit() (*service.SaveInput, error) {
	var fieldErrs []apperror.FieldError
	if strings.TrimSpace(f.CustomerName) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if strings.TrimSpace(f.ResponsibleParty) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "responsible_party", Message: "Responsible party is required"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	return &service.SaveInput{
		CustomerName:     strings.TrimSpace(f.CustomerName),
		ResponsibleParty: strings.TrimSpace(f.ResponsibleParty),
		Amount:           parseAmount(f.Amount),
		IsPaid:           f.IsPaid,
		IsDelivered:      f.IsDelivered,
	}, nil
}

func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
