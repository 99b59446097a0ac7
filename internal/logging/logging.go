// Package logging hands out pre-configured logrus loggers, one per component.
package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger returns the logger for a component, creating it on first use.
// The level comes from LINKDECK_LOG_LEVEL and defaults to info.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if entry, ok := loggers[component]; ok {
		return entry
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(os.Getenv("LINKDECK_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}
