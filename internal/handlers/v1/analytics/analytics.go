package analytics

import (
	"context"
	"time"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/expense-server/internal/service"
)

// DateRangeInput holds the inclusive start_date/end_date query pair.
type DateRangeInput struct {
	StartDate string `query:"start_date" required:"true" format:"date" doc:"First day, YYYY-MM-DD"`
	EndDate   string `query:"end_date" required:"true" format:"date" doc:"Last day, YYYY-MM-DD"`
}

type analyticsService interface {
	Summary(ctx context.Context, start, end time.Time) ([]service.DailyTotal, error)
	CategoryTotals(ctx context.Context, start, end time.Time) ([]service.CategoryTotal, error)
	CategoryTrend(ctx context.Context, category string, start, end time.Time) ([]service.DailyTotal, error)
}

func parseDateRange(input DateRangeInput) (time.Time, time.Time, error) {
	start, err := httputil.ParseDate("start_date", input.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := httputil.ParseDate("end_date", input.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
