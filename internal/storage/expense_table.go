package storage

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// IExpenseTable defines the Store operations on expenses.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name IExpenseTable --output mock_IExpenseTable.go
type IExpenseTable interface {
	Insert(ctx context.Context, create *expense.ExpenseCreate) error
	Update(ctx context.Context, id int64, update *expense.ExpenseUpdate) (int64, error)
	FetchByDate(ctx context.Context, date time.Time) ([]*expense.Expense, error)
	DeleteByDate(ctx context.Context, date time.Time) (int64, error)
	Summary(ctx context.Context, dateRange expense.DateRange) ([]*expense.DailyTotal, error)
	CategoryTotals(ctx context.Context, dateRange expense.DateRange) ([]*expense.CategoryTotal, error)
	CategoryTrend(ctx context.Context, category string, dateRange expense.DateRange) ([]*expense.DailyTotal, error)
}

// ExpensesTable provides access to the expenses table. Writes go through
// WithWriter, reads through a pool Reader.
type ExpensesTable struct {
	storage *Storage
}

// Ensure ExpensesTable implements IExpenseTable at compile time.
var _ IExpenseTable = (*ExpensesTable)(nil)

// Insert appends one expense.
func (t *ExpensesTable) Insert(ctx context.Context, create *expense.ExpenseCreate) error {
	ctx, finish := t.storage.startOperation(ctx, "Insert", logrus.Fields{
		"expenseDate": expense.FormatDate(create.ExpenseDate),
		"amount":      create.Amount.String(),
		"category":    create.Category,
		"notes":       create.Notes.GetOrZero(),
	}, attribute.String("expense.date", expense.FormatDate(create.ExpenseDate)))

	err := t.storage.WithWriter(ctx, func(ctx context.Context, writer *Writer) error {
		return writer.Expense.Insert(ctx, create)
	})
	return finish(err)
}

// Update replaces every mutable field of expense id. Zero rows affected is not an error.
func (t *ExpensesTable) Update(ctx context.Context, id int64, update *expense.ExpenseUpdate) (int64, error) {
	ctx, finish := t.storage.startOperation(ctx, "Update", logrus.Fields{
		"id":          id,
		"expenseDate": expense.FormatDate(update.ExpenseDate),
		"amount":      update.Amount.String(),
		"category":    update.Category,
		"notes":       update.Notes.GetOrZero(),
	}, attribute.Int64("expense.id", id))

	var rowsAffected int64
	err := t.storage.WithWriter(ctx, func(ctx context.Context, writer *Writer) error {
		var err error
		rowsAffected, err = writer.Expense.Update(ctx, id, update)
		return err
	})
	if err := finish(err); err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

// FetchByDate returns the expenses of one day ordered by id, never nil.
func (t *ExpensesTable) FetchByDate(ctx context.Context, date time.Time) ([]*expense.Expense, error) {
	ctx, finish := t.storage.startOperation(ctx, "FetchByDate", logrus.Fields{
		"expenseDate": expense.FormatDate(date),
	}, attribute.String("expense.date", expense.FormatDate(date)))

	rows, err := t.storage.Reader().Expenses.FetchByDate(ctx, date)
	if err := finish(err); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*expense.Expense{}
	}
	return rows, nil
}

// DeleteByDate removes every expense of the day. Zero rows affected is not an error.
func (t *ExpensesTable) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	ctx, finish := t.storage.startOperation(ctx, "DeleteByDate", logrus.Fields{
		"expenseDate": expense.FormatDate(date),
	}, attribute.String("expense.date", expense.FormatDate(date)))

	var rowsAffected int64
	err := t.storage.WithWriter(ctx, func(ctx context.Context, writer *Writer) error {
		var err error
		rowsAffected, err = writer.Expense.DeleteByDate(ctx, date)
		return err
	})
	if err := finish(err); err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

// Summary returns daily totals over the closed range, ascending by day, never nil.
func (t *ExpensesTable) Summary(ctx context.Context, dateRange expense.DateRange) ([]*expense.DailyTotal, error) {
	ctx, finish := t.storage.startOperation(ctx, "Summary", rangeFields(dateRange), rangeAttributes(dateRange)...)

	rows, err := t.storage.Reader().Expenses.Summary(ctx, dateRange)
	if err := finish(err); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*expense.DailyTotal{}
	}
	return rows, nil
}

// CategoryTotals returns per-category totals over the closed range ordered by
// total descending, then category ascending. Never nil.
func (t *ExpensesTable) CategoryTotals(ctx context.Context, dateRange expense.DateRange) ([]*expense.CategoryTotal, error) {
	ctx, finish := t.storage.startOperation(ctx, "CategoryTotals", rangeFields(dateRange), rangeAttributes(dateRange)...)

	rows, err := t.storage.Reader().Expenses.CategoryTotals(ctx, dateRange)
	if err := finish(err); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*expense.CategoryTotal{}
	}
	return rows, nil
}

// CategoryTrend returns daily totals of one category over the closed range, never nil.
func (t *ExpensesTable) CategoryTrend(ctx context.Context, category string, dateRange expense.DateRange) ([]*expense.DailyTotal, error) {
	fields := rangeFields(dateRange)
	fields["category"] = category
	ctx, finish := t.storage.startOperation(ctx, "CategoryTrend", fields,
		append(rangeAttributes(dateRange), attribute.String("expense.category", category))...)

	rows, err := t.storage.Reader().Expenses.CategoryTrend(ctx, category, dateRange)
	if err := finish(err); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*expense.DailyTotal{}
	}
	return rows, nil
}

func rangeFields(dateRange expense.DateRange) logrus.Fields {
	return logrus.Fields{
		"startDate": expense.FormatDate(dateRange.Start),
		"endDate":   expense.FormatDate(dateRange.End),
	}
}

func rangeAttributes(dateRange expense.DateRange) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("expense.start_date", expense.FormatDate(dateRange.Start)),
		attribute.String("expense.end_date", expense.FormatDate(dateRange.End)),
	}
}
