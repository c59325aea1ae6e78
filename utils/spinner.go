package utils

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))

// StartSpinner shows a spinner on stderr while suffix is in progress.
// Nothing is drawn when stderr is not a terminal.
func StartSpinner(suffix string) {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return
	}
	spin.Suffix = " " + suffix
	spin.Start()
}

func StopSpinner() {
	spin.Stop()
}
