package httputil

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/expense-server/internal/service"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	if assert.ErrorAs(t, err, &statusErr) {
		return statusErr.GetStatus()
	}
	return 0
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("expense_date", "2024-09-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-09-01", date.Format("2006-01-02"))

	_, err = ParseDate("expense_date", "09/01/2024")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("12.50")
	assert.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("12.5")))

	_, err = ParseAmount("twelve")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestFromServiceError(t *testing.T) {
	validation := &service.ValidationError{Field: "amount", Message: "must be greater than 0"}
	assert.Equal(t, http.StatusBadRequest, statusOf(t, FromServiceError(validation, "failed")))

	storeFailure := &service.ServiceError{Op: "Summary", Err: errors.New("database unavailable")}
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, FromServiceError(storeFailure, "failed")))
}
