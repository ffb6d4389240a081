package logging

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
	}

	if len(os.Getenv("LOG_DEBUG")) != 0 {
		logger.Level = logrus.DebugLevel
	}

	return &logger
}

// DumpPayload renders a payload for debug entries. Empty when debug is off so
// callers can pass the result straight to WithField without an enabled check.
func DumpPayload(logger *logrus.Logger, payload interface{}) string {
	if !logger.IsLevelEnabled(logrus.DebugLevel) {
		return ""
	}
	return spew.Sdump(payload)
}
