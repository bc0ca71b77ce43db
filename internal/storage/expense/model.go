package expense

import (
	"time"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
)

const tableName = "expenses"

// Expense represents a row of the expenses table.
type Expense struct {
	ID          int64            `db:"id"`
	ExpenseDate time.Time        `db:"expense_date"`
	Amount      decimal.Decimal  `db:"amount"`
	Category    string           `db:"category"`
	Notes       null.Val[string] `db:"notes"`
}

// ExpenseCreate is the input for inserting a new expense.
type ExpenseCreate struct {
	ExpenseDate time.Time
	Amount      decimal.Decimal
	Category    string
	Notes       null.Val[string]
}

// ExpenseUpdate replaces every mutable field of an existing expense.
type ExpenseUpdate struct {
	ExpenseDate time.Time
	Amount      decimal.Decimal
	Category    string
	Notes       null.Val[string]
}

// DateRange is a closed interval of calendar days. Start after End is not
// checked here.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DailyTotal is the exact sum of amounts for one day.
type DailyTotal struct {
	Day   time.Time       `db:"day"`
	Total decimal.Decimal `db:"total"`
}

// CategoryTotal is the exact sum of amounts for one category.
type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

// FormatDate renders the calendar day of t the way the DATE column expects it.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
