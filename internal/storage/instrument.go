package storage

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/carson-networks/expense-server/internal/storage")

// startOperation logs the operation before it runs and opens its span. The
// returned finish func ends the span and wraps a non-nil error in StorageError.
func (s *Storage) startOperation(
	ctx context.Context,
	op string,
	fields logrus.Fields,
	attrs ...attribute.KeyValue,
) (context.Context, func(error) error) {
	if s.logger != nil {
		s.logger.WithFields(fields).WithField("operation", op).Infof("Storage.%v.Start", op)
	}

	attrs = append(attrs,
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", op),
	)
	ctx, span := tracer.Start(ctx, "storage."+op, trace.WithAttributes(attrs...))

	return ctx, func(err error) error {
		defer span.End()
		if err == nil {
			return nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &StorageError{Op: op, Err: err}
	}
}
