package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/expense"
)

type Reader struct {
	Expenses *expense.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Expenses: expense.NewReader(exec),
	}
}
