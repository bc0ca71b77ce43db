package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

type SummaryInput struct {
	DateRangeInput
}

type SummaryOutput struct {
	Body []service.DailyTotal
}

// SummaryHandler handles GET /summary.
type SummaryHandler struct {
	AnalyticsService analyticsService
}

func NewSummaryHandler(svc analyticsService) *SummaryHandler {
	return &SummaryHandler{AnalyticsService: svc}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summary",
		Method:      http.MethodGet,
		Path:        "/summary",
		Summary:     "Daily totals",
		Description: "Returns one total per day that has expenses in the inclusive range, ascending by day.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	start, end, err := parseDateRange(input.DateRangeInput)
	if err != nil {
		return nil, err
	}

	totals, err := h.AnalyticsService.Summary(ctx, start, end)
	if err != nil {
		return nil, httputil.FromServiceError(err, "failed to build summary")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("days", len(totals))
	}

	return &SummaryOutput{Body: totals}, nil
}
