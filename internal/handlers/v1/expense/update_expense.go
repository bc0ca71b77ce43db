package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/logging"
)

// UpdateExpenseInput is the Huma input for replacing an expense.
type UpdateExpenseInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Expense id"`
	Body ExpenseBody
}

// UpdateExpenseOutput is the Huma output for replacing an expense.
type UpdateExpenseOutput struct {
	Body httputil.MessageResponse
}

// UpdateExpenseHandler handles PUT /expenses/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseService
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseService) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/expenses/{id}",
		Summary:     "Update expense",
		Description: "Replaces date, amount, category and notes of an expense. An unknown id reports rowsAffected 0.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expenseInput, err := parseExpenseBody(input.Body)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := h.ExpenseService.UpdateExpense(ctx, input.ID, expenseInput)
	if err != nil {
		return nil, httputil.FromServiceError(err, "failed to update expense")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("rowsAffected", rowsAffected)
	}

	return &UpdateExpenseOutput{
		Body: httputil.MessageResponse{Msg: "updated", RowsAffected: &rowsAffected},
	}, nil
}
