package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// ExpenseService validates requests, calls the Store and shapes its rows for
// transport. Decimal amounts become float64 only in the values it returns.
type ExpenseService struct {
	storage *storage.Storage
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store}
}

// AddExpense stores a new expense.
func (s *ExpenseService) AddExpense(ctx context.Context, input ExpenseInput) error {
	if err := validateExpenseInput(input); err != nil {
		return err
	}

	err := s.storage.Expenses.Insert(ctx, &expense.ExpenseCreate{
		ExpenseDate: input.ExpenseDate,
		Amount:      input.Amount,
		Category:    input.Category,
		Notes:       notesToStorage(input.Notes),
	})
	if err != nil {
		return &ServiceError{Op: "AddExpense", Err: err}
	}
	return nil
}

// UpdateExpense replaces expense id and returns the number of rows changed.
// An unknown id changes nothing and returns 0 without an error.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id int64, input ExpenseInput) (int64, error) {
	if id <= 0 {
		return 0, &ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := validateExpenseInput(input); err != nil {
		return 0, err
	}

	rowsAffected, err := s.storage.Expenses.Update(ctx, id, &expense.ExpenseUpdate{
		ExpenseDate: input.ExpenseDate,
		Amount:      input.Amount,
		Category:    input.Category,
		Notes:       notesToStorage(input.Notes),
	})
	if err != nil {
		return 0, &ServiceError{Op: "UpdateExpense", Err: err}
	}
	return rowsAffected, nil
}

// ExpensesForDate lists a day's expenses ordered by id.
func (s *ExpenseService) ExpensesForDate(ctx context.Context, date time.Time) ([]Expense, error) {
	rows, err := s.storage.Expenses.FetchByDate(ctx, date)
	if err != nil {
		return nil, &ServiceError{Op: "ExpensesForDate", Err: err}
	}

	expenses := make([]Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(row)
	}
	return expenses, nil
}

// DeleteExpensesForDate removes a day's expenses and returns how many were removed.
func (s *ExpenseService) DeleteExpensesForDate(ctx context.Context, date time.Time) (int64, error) {
	rowsAffected, err := s.storage.Expenses.DeleteByDate(ctx, date)
	if err != nil {
		return 0, &ServiceError{Op: "DeleteExpensesForDate", Err: err}
	}
	return rowsAffected, nil
}

// Summary returns daily totals for [start, end].
func (s *ExpenseService) Summary(ctx context.Context, start, end time.Time) ([]DailyTotal, error) {
	dateRange, err := newDateRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.Summary(ctx, dateRange)
	if err != nil {
		return nil, &ServiceError{Op: "Summary", Err: err}
	}
	return dailyTotalsFromStorage(rows), nil
}

// CategoryTotals returns per-category totals for [start, end], largest first.
func (s *ExpenseService) CategoryTotals(ctx context.Context, start, end time.Time) ([]CategoryTotal, error) {
	dateRange, err := newDateRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.CategoryTotals(ctx, dateRange)
	if err != nil {
		return nil, &ServiceError{Op: "CategoryTotals", Err: err}
	}
	return categoryTotalsFromStorage(rows), nil
}

// CategoryTrend returns one category's daily totals for [start, end].
func (s *ExpenseService) CategoryTrend(ctx context.Context, category string, start, end time.Time) ([]DailyTotal, error) {
	if strings.TrimSpace(category) == "" {
		return nil, &ValidationError{Field: "category", Message: "is required"}
	}
	dateRange, err := newDateRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Expenses.CategoryTrend(ctx, category, dateRange)
	if err != nil {
		return nil, &ServiceError{Op: "CategoryTrend", Err: err}
	}
	return dailyTotalsFromStorage(rows), nil
}

// amountScale and maxAmount mirror the NUMERIC(12,2) amount column.
const amountScale = 2

var maxAmount = decimal.New(1, 10)

func validateExpenseInput(input ExpenseInput) error {
	if !input.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "must be greater than 0"}
	}
	if !input.Amount.Equal(input.Amount.Truncate(amountScale)) {
		return &ValidationError{Field: "amount", Message: "must have at most 2 decimal places"}
	}
	if input.Amount.GreaterThanOrEqual(maxAmount) {
		return &ValidationError{Field: "amount", Message: "must be less than 10000000000"}
	}
	if strings.TrimSpace(input.Category) == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	return nil
}

// Presence of dates is enforced by the handlers; 0001-01-01 is a valid day.
func newDateRange(start, end time.Time) (expense.DateRange, error) {
	if start.After(end) {
		return expense.DateRange{}, &ValidationError{Field: "start_date", Message: "must not be after end_date"}
	}
	return expense.DateRange{Start: start, End: end}, nil
}
