package expense

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FetchByDate returns the expenses of one day ordered by id.
func (r *Reader) FetchByDate(ctx context.Context, date time.Time) ([]*Expense, error) {
	return bob.All(ctx, r.exec, fetchByDateQuery(date), scan.StructMapper[*Expense]())
}

// Summary returns one total per day that has expenses in the range, ascending by day.
func (r *Reader) Summary(ctx context.Context, dateRange DateRange) ([]*DailyTotal, error) {
	return bob.All(ctx, r.exec, summaryQuery(dateRange), scan.StructMapper[*DailyTotal]())
}

// CategoryTotals returns one total per category, largest first.
func (r *Reader) CategoryTotals(ctx context.Context, dateRange DateRange) ([]*CategoryTotal, error) {
	return bob.All(ctx, r.exec, categoryTotalsQuery(dateRange), scan.StructMapper[*CategoryTotal]())
}

// CategoryTrend returns daily totals for a single category, ascending by day.
func (r *Reader) CategoryTrend(ctx context.Context, category string, dateRange DateRange) ([]*DailyTotal, error) {
	return bob.All(ctx, r.exec, categoryTrendQuery(category, dateRange), scan.StructMapper[*DailyTotal]())
}

func fetchByDateQuery(date time.Time) bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(
		sm.Columns("id", "expense_date", "amount", "category", "notes"),
		sm.From(tableName),
		sm.Where(psql.Quote("expense_date").EQ(psql.Arg(FormatDate(date)))),
		sm.OrderBy("id").Asc(),
	)
}

func summaryQuery(dateRange DateRange) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("expense_date AS day", "SUM(amount) AS total"),
		sm.From(tableName),
	}
	queryMods = append(queryMods, inRange(dateRange)...)
	queryMods = append(queryMods,
		sm.GroupBy("expense_date"),
		sm.OrderBy("day").Asc(),
	)
	return psql.Select(queryMods...)
}

func categoryTotalsQuery(dateRange DateRange) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("category", "SUM(amount) AS total"),
		sm.From(tableName),
	}
	queryMods = append(queryMods, inRange(dateRange)...)
	queryMods = append(queryMods,
		sm.GroupBy("category"),
		sm.OrderBy("total").Desc(),
		sm.OrderBy("category").Asc(),
	)
	return psql.Select(queryMods...)
}

func categoryTrendQuery(category string, dateRange DateRange) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("expense_date AS day", "SUM(amount) AS total"),
		sm.From(tableName),
		sm.Where(psql.Quote("category").EQ(psql.Arg(category))),
	}
	queryMods = append(queryMods, inRange(dateRange)...)
	queryMods = append(queryMods,
		sm.GroupBy("expense_date"),
		sm.OrderBy("day").Asc(),
	)
	return psql.Select(queryMods...)
}

// inRange restricts expense_date to the closed interval.
func inRange(dateRange DateRange) []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("expense_date").GTE(psql.Arg(FormatDate(dateRange.Start)))),
		sm.Where(psql.Quote("expense_date").LTE(psql.Arg(FormatDate(dateRange.End)))),
	}
}
