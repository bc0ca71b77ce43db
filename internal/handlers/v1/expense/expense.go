package expense

import (
	"context"
	"time"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/service"
)

// ExpenseBody is the request body for creating or replacing an expense.
type ExpenseBody struct {
	ExpenseDate string  `json:"expense_date" format:"date" doc:"Calendar day, YYYY-MM-DD"`
	Amount      string  `json:"amount" minLength:"1" doc:"Decimal amount greater than 0, e.g. '12.50'"`
	Category    string  `json:"category" minLength:"1" doc:"Category label"`
	Notes       *string `json:"notes,omitempty" doc:"Optional note"`
}

// expenseService is the subset of service.ExpenseService the expense handlers use.
type expenseService interface {
	AddExpense(ctx context.Context, input service.ExpenseInput) error
	UpdateExpense(ctx context.Context, id int64, input service.ExpenseInput) (int64, error)
	ExpensesForDate(ctx context.Context, date time.Time) ([]service.Expense, error)
	DeleteExpensesForDate(ctx context.Context, date time.Time) (int64, error)
}

// parseExpenseBody converts the wire fields into a service input. Range and
// sign checks are left to the service.
func parseExpenseBody(body ExpenseBody) (service.ExpenseInput, error) {
	expenseDate, err := httputil.ParseDate("expense_date", body.ExpenseDate)
	if err != nil {
		return service.ExpenseInput{}, err
	}
	amount, err := httputil.ParseAmount(body.Amount)
	if err != nil {
		return service.ExpenseInput{}, err
	}

	return service.ExpenseInput{
		ExpenseDate: expenseDate,
		Amount:      amount,
		Category:    body.Category,
		Notes:       body.Notes,
	}, nil
}
