// Package logger configures the process-wide logrus logger.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init sets up global logrus configuration: JSON output on stdout at the given level.
func Init(level logrus.Level) {
	// JSON output for log collection
	logrus.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
}

// InitFromString is like Init but parses the level name; unknown names fall back to info.
func InitFromString(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Init(lvl)
	if err != nil {
		logrus.WithField("log_level", level).Warn("unknown log level, using info")
	}
}

// New returns an entry tagged with the emitting component.
func New(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
