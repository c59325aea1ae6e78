package utils

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// SetupColors enables ANSI colors only when w is a terminal.
func SetupColors(w io.Writer) {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		text.EnableColors()
		return
	}
	text.DisableColors()
}
