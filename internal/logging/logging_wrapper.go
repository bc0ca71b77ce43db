package logging

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// LoggingWrapper adapts a handler that reports its own error into an
// http.HandlerFunc with start/complete/error logging.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := newRequestLogData(log, req)
		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware gives every request a fresh LogData in its context and logs the
// outcome once the wrapped handler returns.
func Middleware(loggingName string, log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := newRequestLogData(log, req)
		log.WithField("path", req.URL.Path).Infof("Handler.%v.Start", loggingName)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		endTimer := logData.AddTiming("duration")
		next.ServeHTTP(sw, req.WithContext(WithLogData(req.Context(), logData)))
		endTimer()

		logData.AddData("status", sw.status)
		if sw.status >= http.StatusInternalServerError {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	})
}

func newRequestLogData(log *logrus.Logger, req *http.Request) *LogData {
	logData := NewLogData(log)
	logData.AddData("requestID", uuid.Must(uuid.NewV4()).String())
	logData.AddData("method", req.Method)
	logData.AddData("path", req.URL.Path)
	return logData
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
