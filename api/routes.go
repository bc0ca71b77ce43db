package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carson-networks/expense-server/internal/handlers/v1/analytics"
	"github.com/carson-networks/expense-server/internal/handlers/v1/expense"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

// Handler builds the root handler. /status keeps its own LoggingWrapper; every
// other route goes to the huma mux under logging.Middleware.
func (r *Rest) Handler() http.Handler {
	apiMux := http.NewServeMux()
	api := humago.New(apiMux, huma.DefaultConfig("Expense Tracker API", "1.0.0"))

	expenseService := r.Service.Expense
	expense.NewCreateExpenseHandler(expenseService).Register(api)
	expense.NewUpdateExpenseHandler(expenseService).Register(api)
	expense.NewListExpensesHandler(expenseService).Register(api)
	expense.NewDeleteExpensesHandler(expenseService).Register(api)

	analytics.NewSummaryHandler(expenseService).Register(api)
	analytics.NewCategoryTotalsHandler(expenseService).Register(api)
	analytics.NewCategoryTrendHandler(expenseService).Register(api)

	statusHandler := status.NewHandler(r.Storage)

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/", logging.Middleware("API", r.Logger, apiMux))

	return otelhttp.NewHandler(CORS(mux), "expense-server")
}

// Serve listens until ctx is canceled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
