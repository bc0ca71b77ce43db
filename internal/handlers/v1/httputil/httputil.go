// Package httputil holds the request parsing and error mapping shared by the v1 handlers.
package httputil

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/service"
)

// MessageResponse is the body returned by write endpoints.
type MessageResponse struct {
	Msg          string `json:"msg" doc:"Outcome"`
	RowsAffected *int64 `json:"rowsAffected,omitempty" doc:"Rows changed by the operation"`
}

// ParseDate parses a YYYY-MM-DD value, answering 400 on failure.
func ParseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return date, nil
}

// ParseAmount parses a decimal amount string, answering 400 on failure.
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}

// FromServiceError maps validation failures to 400 and everything else to a
// generic 500 carrying message.
func FromServiceError(err error, message string) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return huma.NewError(http.StatusBadRequest, validationErr.Error())
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}
