package service

import (
	"time"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// ExpenseInput carries the caller's fields for insert and update.
type ExpenseInput struct {
	ExpenseDate time.Time
	Amount      decimal.Decimal
	Category    string
	Notes       *string
}

// Expense is a stored expense as returned to transport callers. Amount is a
// float64 from here on.
type Expense struct {
	ID          int64   `json:"id" doc:"Expense id"`
	ExpenseDate string  `json:"expense_date" doc:"Calendar day, YYYY-MM-DD"`
	Amount      float64 `json:"amount" doc:"Amount"`
	Category    string  `json:"category" doc:"Category label"`
	Notes       *string `json:"notes" doc:"Optional note"`
}

// DailyTotal is the sum of one day's expenses.
type DailyTotal struct {
	Day   string  `json:"day" doc:"Calendar day, YYYY-MM-DD"`
	Total float64 `json:"total" doc:"Sum of amounts"`
}

// CategoryTotal is the sum of one category's expenses.
type CategoryTotal struct {
	Category string  `json:"category" doc:"Category label"`
	Total    float64 `json:"total" doc:"Sum of amounts"`
}

func expenseFromStorage(row *expense.Expense) Expense {
	return Expense{
		ID:          row.ID,
		ExpenseDate: expense.FormatDate(row.ExpenseDate),
		Amount:      row.Amount.InexactFloat64(),
		Category:    row.Category,
		Notes:       row.Notes.Ptr(),
	}
}

func dailyTotalsFromStorage(rows []*expense.DailyTotal) []DailyTotal {
	totals := make([]DailyTotal, len(rows))
	for i, row := range rows {
		totals[i] = DailyTotal{
			Day:   expense.FormatDate(row.Day),
			Total: row.Total.InexactFloat64(),
		}
	}
	return totals
}

func categoryTotalsFromStorage(rows []*expense.CategoryTotal) []CategoryTotal {
	totals := make([]CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = CategoryTotal{
			Category: row.Category,
			Total:    row.Total.InexactFloat64(),
		}
	}
	return totals
}

func notesToStorage(notes *string) null.Val[string] {
	if notes == nil {
		return null.Val[string]{}
	}
	return null.From(*notes)
}
