// Package logging configures the CLI's diagnostic logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr. The default level is warn so
// normal command output stays clean; --verbose lowers it to debug.
func New(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
