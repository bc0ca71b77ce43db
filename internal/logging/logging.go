package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns the process JSON logger. Unknown levels fall back to info.
func SetupLogging(level string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logger := logrus.New()
	logger.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}
	logger.Out = os.Stdout
	logger.Level = logLevel

	return logger
}
