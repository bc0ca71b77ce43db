package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListExpensesInput is the Huma input for listing a day's expenses.
type ListExpensesInput struct {
	ExpenseDate string `query:"expense_date" required:"true" format:"date" doc:"Calendar day, YYYY-MM-DD"`
}

// ListExpensesOutput is the Huma output for listing a day's expenses.
type ListExpensesOutput struct {
	Body []service.Expense
}

// ListExpensesHandler handles GET /expenses.
type ListExpensesHandler struct {
	ExpenseService expenseService
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseService) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/expenses",
		Summary:     "List expenses",
		Description: "Returns the expenses of one day ordered by id.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	logData := logging.GetLogData(ctx)
	expenseDate, err := httputil.ParseDate("expense_date", input.ExpenseDate)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listExpensesMs")
	}
	expenses, err := h.ExpenseService.ExpensesForDate(ctx, expenseDate)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httputil.FromServiceError(err, "failed to list expenses")
	}

	if logData != nil {
		logData.AddData("expenseCount", len(expenses))
	}

	return &ListExpensesOutput{Body: expenses}, nil
}
