package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/logging"
)

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body ExpenseBody
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Status int
	Body   httputil.MessageResponse
}

// CreateExpenseHandler handles POST /expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseService
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseService) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/expenses",
		Summary:       "Create expense",
		Description:   "Records a new expense.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	expenseInput, err := parseExpenseBody(input.Body)
	if err != nil {
		return nil, err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("category", expenseInput.Category)
	}

	if err := h.ExpenseService.AddExpense(ctx, expenseInput); err != nil {
		return nil, httputil.FromServiceError(err, "failed to create expense")
	}

	return &CreateExpenseOutput{
		Status: http.StatusCreated,
		Body:   httputil.MessageResponse{Msg: "added"},
	}, nil
}
