package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/service"
)

type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) AddExpense(ctx context.Context, input service.ExpenseInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, id int64, input service.ExpenseInput) (int64, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockExpenseService) ExpensesForDate(ctx context.Context, date time.Time) ([]service.Expense, error) {
	args := m.Called(ctx, date)
	expenses, _ := args.Get(0).([]service.Expense)
	return expenses, args.Error(1)
}

func (m *mockExpenseService) DeleteExpensesForDate(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAPI(t *testing.T, svc expenseService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateExpenseHandler(svc).Register(api)
	NewUpdateExpenseHandler(svc).Register(api)
	NewListExpensesHandler(svc).Register(api)
	NewDeleteExpensesHandler(svc).Register(api)
	return api
}

func day(value string) time.Time {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return date
}

func strPtr(s string) *string {
	return &s
}

// -- parseExpenseBody unit tests --

func TestParseExpenseBody_ValidInput(t *testing.T) {
	input, err := parseExpenseBody(ExpenseBody{
		ExpenseDate: "2024-09-01",
		Amount:      "12.50",
		Category:    "Food",
		Notes:       strPtr("lunch"),
	})

	assert.NoError(t, err)
	assert.True(t, input.ExpenseDate.Equal(day("2024-09-01")))
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, "Food", input.Category)
	assert.Equal(t, "lunch", *input.Notes)
}

func TestParseExpenseBody_InvalidAmount(t *testing.T) {
	_, err := parseExpenseBody(ExpenseBody{ExpenseDate: "2024-09-01", Amount: "12,50", Category: "Food"})
	assert.Error(t, err)
}

func TestParseExpenseBody_InvalidDate(t *testing.T) {
	_, err := parseExpenseBody(ExpenseBody{ExpenseDate: "2024-13-40", Amount: "1", Category: "Food"})
	assert.Error(t, err)
}

// -- HTTP tests (full Huma stack via humatest) --

func TestHTTP_CreateExpense_Success(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("AddExpense", mock.Anything, mock.MatchedBy(func(input service.ExpenseInput) bool {
		return input.ExpenseDate.Equal(day("2024-09-01")) &&
			input.Amount.Equal(decimal.RequireFromString("12.50")) &&
			input.Category == "Food" &&
			input.Notes == nil
	})).Return(nil)

	resp := newTestAPI(t, mockSvc).Post("/expenses", ExpenseBody{
		ExpenseDate: "2024-09-01",
		Amount:      "12.50",
		Category:    "Food",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body httputil.MessageResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "added", body.Msg)
	assert.Nil(t, body.RowsAffected)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_ValidationErrorIsBadRequest(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("AddExpense", mock.Anything, mock.Anything).
		Return(&service.ValidationError{Field: "amount", Message: "must be greater than 0"})

	resp := newTestAPI(t, mockSvc).Post("/expenses", ExpenseBody{
		ExpenseDate: "2024-09-01",
		Amount:      "-3",
		Category:    "Food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_UnparseableAmount(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Post("/expenses", ExpenseBody{
		ExpenseDate: "2024-09-01",
		Amount:      "a lot",
		Category:    "Food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "AddExpense", mock.Anything, mock.Anything)
}

func TestHTTP_CreateExpense_MissingCategory(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Post("/expenses", map[string]any{
		"expense_date": "2024-09-01",
		"amount":       "5",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "AddExpense", mock.Anything, mock.Anything)
}

func TestHTTP_CreateExpense_StoreFailure(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("AddExpense", mock.Anything, mock.Anything).
		Return(&service.ServiceError{Op: "AddExpense", Err: errors.New("connection refused")})

	resp := newTestAPI(t, mockSvc).Post("/expenses", ExpenseBody{
		ExpenseDate: "2024-09-01",
		Amount:      "5",
		Category:    "Food",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_ReportsRowsAffected(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("UpdateExpense", mock.Anything, int64(7), mock.MatchedBy(func(input service.ExpenseInput) bool {
		return input.Category == "Travel" && input.Notes != nil && *input.Notes == "taxi"
	})).Return(int64(1), nil)

	resp := newTestAPI(t, mockSvc).Put("/expenses/7", ExpenseBody{
		ExpenseDate: "2024-09-02",
		Amount:      "30.00",
		Category:    "Travel",
		Notes:       strPtr("taxi"),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body httputil.MessageResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "updated", body.Msg)
	if assert.NotNil(t, body.RowsAffected) {
		assert.Equal(t, int64(1), *body.RowsAffected)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_UnknownIDIsNotAnError(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("UpdateExpense", mock.Anything, int64(999), mock.Anything).Return(int64(0), nil)

	resp := newTestAPI(t, mockSvc).Put("/expenses/999", ExpenseBody{
		ExpenseDate: "2024-09-02",
		Amount:      "1",
		Category:    "Food",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body httputil.MessageResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	if assert.NotNil(t, body.RowsAffected) {
		assert.Equal(t, int64(0), *body.RowsAffected)
	}
}

func TestHTTP_UpdateExpense_NonPositiveID(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Put("/expenses/0", ExpenseBody{
		ExpenseDate: "2024-09-02",
		Amount:      "1",
		Category:    "Food",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateExpense", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_ListExpenses_Success(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("ExpensesForDate", mock.Anything, day("2024-09-01")).Return([]service.Expense{
		{ID: 1, ExpenseDate: "2024-09-01", Amount: 12.5, Category: "Food", Notes: strPtr("lunch")},
		{ID: 2, ExpenseDate: "2024-09-01", Amount: 7.25, Category: "Food"},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/expenses?expense_date=2024-09-01")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []service.Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	if assert.Len(t, body, 2) {
		assert.Equal(t, int64(1), body[0].ID)
		assert.Equal(t, 12.5, body[0].Amount)
		assert.Equal(t, "lunch", *body[0].Notes)
		assert.Equal(t, int64(2), body[1].ID)
		assert.Nil(t, body[1].Notes)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_EmptyDayIsEmptyArray(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("ExpensesForDate", mock.Anything, day("2024-01-01")).Return([]service.Expense{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/expenses?expense_date=2024-01-01")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_ListExpenses_MissingDate(t *testing.T) {
	mockSvc := new(mockExpenseService)

	resp := newTestAPI(t, mockSvc).Get("/expenses")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ExpensesForDate", mock.Anything, mock.Anything)
}

func TestHTTP_DeleteExpenses_Success(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("DeleteExpensesForDate", mock.Anything, day("2024-09-01")).Return(int64(2), nil)

	resp := newTestAPI(t, mockSvc).Delete("/expenses?expense_date=2024-09-01")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body httputil.MessageResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "deleted", body.Msg)
	if assert.NotNil(t, body.RowsAffected) {
		assert.Equal(t, int64(2), *body.RowsAffected)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteExpenses_StoreFailure(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("DeleteExpensesForDate", mock.Anything, mock.Anything).
		Return(int64(0), &service.ServiceError{Op: "DeleteExpensesForDate", Err: errors.New("timeout")})

	resp := newTestAPI(t, mockSvc).Delete("/expenses?expense_date=2024-09-01")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
