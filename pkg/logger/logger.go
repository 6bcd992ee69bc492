package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init so that tests and
// library callers never hit a nil logger.
var Log = logrus.New()

// Init configures Log from the environment. Call it once from main.
//
// LOG_LEVEL selects the level (default "info"), LOG_FORMAT=json switches to
// the JSON formatter, anything else uses the colored text formatter.
func Init() {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// For returns an entry tagged with the given component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
