package utils

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the global logger used for diagnostics.
// User-facing progress goes to stdout; logs go to w, normally stderr.
func SetupLogger(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetReportTimestamp(lvl == log.DebugLevel)
	return nil
}
