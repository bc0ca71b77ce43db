package expense

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

type Writer struct {
	tx bob.Tx
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{tx: tx}
}

func (w *Writer) Insert(ctx context.Context, create *ExpenseCreate) error {
	_, err := bob.Exec(ctx, w.tx, insertQuery(create))
	return err
}

// Update overwrites the row with the given id and reports how many rows matched.
func (w *Writer) Update(ctx context.Context, id int64, update *ExpenseUpdate) (int64, error) {
	result, err := bob.Exec(ctx, w.tx, updateQuery(id, update))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteByDate removes every expense of the day and reports how many were removed.
func (w *Writer) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	result, err := bob.Exec(ctx, w.tx, deleteByDateQuery(date))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func insertQuery(create *ExpenseCreate) bob.BaseQuery[*dialect.InsertQuery] {
	return psql.Insert(
		im.Into(tableName, "expense_date", "amount", "category", "notes"),
		im.Values(psql.Arg(
			FormatDate(create.ExpenseDate),
			create.Amount,
			create.Category,
			create.Notes,
		)),
	)
}

func updateQuery(id int64, update *ExpenseUpdate) bob.BaseQuery[*dialect.UpdateQuery] {
	return psql.Update(
		um.Table(tableName),
		um.SetCol("expense_date").ToArg(FormatDate(update.ExpenseDate)),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("category").ToArg(update.Category),
		um.SetCol("notes").ToArg(update.Notes),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
}

func deleteByDateQuery(date time.Time) bob.BaseQuery[*dialect.DeleteQuery] {
	return psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("expense_date").EQ(psql.Arg(FormatDate(date)))),
	)
}
