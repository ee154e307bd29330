// Package shared holds process-wide logging handles.
package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger, InfoLevel with timestamps on stderr. Stdout
// is reserved for command output such as digests and wordlists.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:           log.InfoLevel,
	ReportTimestamp: true,
})

// ErrorLogger reports critical errors with caller information.
var ErrorLogger = Logger.With()

// EnableDebug switches the shared loggers to DebugLevel and turns on caller reporting.
func EnableDebug() {
	Logger.SetLevel(log.DebugLevel)
	Logger.SetReportCaller(true)
	ErrorLogger.SetLevel(log.DebugLevel)
}
