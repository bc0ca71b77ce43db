package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/config"
)

// Storage owns the PostgreSQL pool. It is built once at start and shared by
// every request; it keeps no other mutable state.
type Storage struct {
	DB       *sql.DB
	Expenses IExpenseTable

	exec   bob.DB
	logger *logrus.Logger
}

// NewStorage opens and pings the database described by env.
func NewStorage(env *config.Config, logger *logrus.Logger) (*Storage, error) {
	return Open(env.PostgresURL(), logger)
}

// Open opens and pings the database at connStr.
func Open(connStr string, logger *logrus.Logger) (*Storage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return New(db, logger), nil
}

// New wraps an already opened pool.
func New(db *sql.DB, logger *logrus.Logger) *Storage {
	s := &Storage{
		DB:     db,
		exec:   bob.NewDB(db),
		logger: logger,
	}
	s.Expenses = &ExpensesTable{storage: s}
	return s
}

// Ping checks that a pooled connection can reach the database.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Reader returns a reader on the pool. Every query borrows its own connection
// and hands it back once its rows are read.
func (s *Storage) Reader() *Reader {
	return NewReader(s.exec)
}

// Write begins a transaction. Callers own the returned Writer and must Commit
// or Rollback it; WithWriter does both for them.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}

// WithWriter runs fn inside one transaction. The transaction is committed when
// fn returns nil and rolled back when fn returns an error or panics; either way
// it is finished before WithWriter returns.
func (s *Storage) WithWriter(ctx context.Context, fn func(ctx context.Context, writer *Writer) error) error {
	writer, err := s.Write(ctx)
	if err != nil {
		return err
	}

	done := false
	defer func() {
		if done {
			return
		}
		if rbErr := writer.Rollback(); rbErr != nil && s.logger != nil {
			s.logger.WithError(rbErr).Warn("Storage.WithWriter.rollback")
		}
	}()

	if err := fn(ctx, writer); err != nil {
		return err
	}

	// a failed commit has already ended the transaction
	done = true
	return writer.Commit()
}
