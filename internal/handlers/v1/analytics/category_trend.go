package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

type CategoryTrendInput struct {
	Category string `query:"category" required:"true" minLength:"1" doc:"Category to trace"`
	DateRangeInput
}

type CategoryTrendOutput struct {
	Body []service.DailyTotal
}

// CategoryTrendHandler handles GET /analytics/category-trend.
type CategoryTrendHandler struct {
	AnalyticsService analyticsService
}

func NewCategoryTrendHandler(svc analyticsService) *CategoryTrendHandler {
	return &CategoryTrendHandler{AnalyticsService: svc}
}

func (h *CategoryTrendHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-trend",
		Method:      http.MethodGet,
		Path:        "/analytics/category-trend",
		Summary:     "Category trend",
		Description: "Returns the daily totals of one category in the inclusive range, ascending by day.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *CategoryTrendHandler) handle(ctx context.Context, input *CategoryTrendInput) (*CategoryTrendOutput, error) {
	start, end, err := parseDateRange(input.DateRangeInput)
	if err != nil {
		return nil, err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("category", input.Category)
	}

	trend, err := h.AnalyticsService.CategoryTrend(ctx, input.Category, start, end)
	if err != nil {
		return nil, httputil.FromServiceError(err, "failed to build category trend")
	}

	return &CategoryTrendOutput{Body: trend}, nil
}
