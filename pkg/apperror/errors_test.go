package apperror_test

import (
	"errors"
	"testing"

	"github.com/AnthonyBalvin/chicharron-web/pkg/apperror"
)

func TestConstructorsCarryHTTPCodes(t *testing.T) {
	cause := errors.New("connection reset by peer")

	if got := apperror.NewFetchError(cause); got.Code != 502 ||
		got.Message != "Failed to load orders: connection reset by peer" {
		t.Errorf("fetch error = %d %q", got.Code, got.Message)
	}
	if got := apperror.NewMutationError(cause); got.Code != 502 ||
		got.Message != "connection reset by peer" {
		t.Errorf("mutation error = %d %q", got.Code, got.Message)
	}
	if got := apperror.NewNotFoundError("Order"); got.Code != 404 ||
		got.Message != "Order not found" {
		t.Errorf("not found error = %d %q", got.Code, got.Message)
	}

	fieldErrs := []apperror.FieldError{{Field: "customer_name", Message: "Customer name is required"}}
	if got := apperror.NewValidationError(fieldErrs); got.Code != 422 || len(got.Errors) != 1 {
		t.Errorf("validation error = %d with %d field errors", got.Code, len(got.Errors))
	}
}

func TestGetAppErrorWrapsUnknownErrors(t *testing.T) {
	plain := errors.New("something broke")
	got := apperror.GetAppError(plain)
	if got.Code != 500 || got.Message != "something broke" {
		t.Errorf("wrapped plain error = %d %q", got.Code, got.Message)
	}

	appErr := apperror.NewNotFoundError("Order")
	if apperror.GetAppError(appErr) != appErr {
		t.Error("an AppError should pass through unchanged")
	}
}
