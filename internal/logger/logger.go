// Package logger provides the application-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It writes to stderr until Init is called.
var Log = logrus.New()

// Init configures the global logger. level is a logrus level name ("debug",
// "info", ...) and falls back to info; format "json" selects the JSON
// formatter, anything else the text formatter.
func Init(level, format string, out io.Writer) {
	Log = New(level, format, out)
}

// New builds a logger without touching the global one.
func New(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	return l
}
