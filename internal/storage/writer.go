package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/expense"
)

type Writer struct {
	tx      bob.Tx
	Expense *expense.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:      tx,
		Expense: expense.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
