package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/service"
)

type CategoryTotalsInput struct {
	DateRangeInput
}

type CategoryTotalsOutput struct {
	Body []service.CategoryTotal
}

// CategoryTotalsHandler handles GET /analytics/categories.
type CategoryTotalsHandler struct {
	AnalyticsService analyticsService
}

func NewCategoryTotalsHandler(svc analyticsService) *CategoryTotalsHandler {
	return &CategoryTotalsHandler{AnalyticsService: svc}
}

func (h *CategoryTotalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-totals",
		Method:      http.MethodGet,
		Path:        "/analytics/categories",
		Summary:     "Category totals",
		Description: "Returns the total per category in the inclusive range, largest first.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *CategoryTotalsHandler) handle(ctx context.Context, input *CategoryTotalsInput) (*CategoryTotalsOutput, error) {
	start, end, err := parseDateRange(input.DateRangeInput)
	if err != nil {
		return nil, err
	}

	totals, err := h.AnalyticsService.CategoryTotals(ctx, start, end)
	if err != nil {
		return nil, httputil.FromServiceError(err, "failed to build category totals")
	}

	return &CategoryTotalsOutput{Body: totals}, nil
}
