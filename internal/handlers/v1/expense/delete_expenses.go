package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/logging"
)

// DeleteExpensesInput is the Huma input for deleting a day's expenses.
type DeleteExpensesInput struct {
	ExpenseDate string `query:"expense_date" required:"true" format:"date" doc:"Calendar day, YYYY-MM-DD"`
}

// DeleteExpensesOutput is the Huma output for deleting a day's expenses.
type DeleteExpensesOutput struct {
	Body httputil.MessageResponse
}

// DeleteExpensesHandler handles DELETE /expenses.
type DeleteExpensesHandler struct {
	ExpenseService expenseService
}

// NewDeleteExpensesHandler creates a new DeleteExpensesHandler.
func NewDeleteExpensesHandler(svc expenseService) *DeleteExpensesHandler {
	return &DeleteExpensesHandler{ExpenseService: svc}
}

// Register registers the delete expenses endpoint with the Huma API.
func (h *DeleteExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expenses",
		Method:      http.MethodDelete,
		Path:        "/expenses",
		Summary:     "Delete expenses",
		Description: "Deletes every expense of one day. Deleting an empty day succeeds with rowsAffected 0.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *DeleteExpensesHandler) handle(ctx context.Context, input *DeleteExpensesInput) (*DeleteExpensesOutput, error) {
	expenseDate, err := httputil.ParseDate("expense_date", input.ExpenseDate)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := h.ExpenseService.DeleteExpensesForDate(ctx, expenseDate)
	if err != nil {
		return nil, httputil.FromServiceError(err, "failed to delete expenses")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("rowsAffected", rowsAffected)
	}

	return &DeleteExpensesOutput{
		Body: httputil.MessageResponse{Msg: "deleted", RowsAffected: &rowsAffected},
	}, nil
}
