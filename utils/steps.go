package utils

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawStepStart(w io.Writer, index, total int, name string) {
	fmt.Fprintf(w, "%s %s...\n", text.FgHiBlue.Sprintf("[*] (%d/%d)", index, total), name)
}

func DrawStepDone(w io.Writer, index, total int, name string, elapsed time.Duration) {
	fmt.Fprintf(w, "%s %s done in %v\n", text.FgHiGreen.Sprintf("[+] (%d/%d)", index, total), name, elapsed.Round(time.Millisecond))
}

func DrawStepFailed(w io.Writer, index, total int, name string, err error) {
	fmt.Fprintf(w, "%s %s failed: %v\n", text.FgHiRed.Sprintf("[!] (%d/%d)", index, total), name, err)
}

func DrawDerivedValue(w io.Writer, label, value string) {
	fmt.Fprintf(w, "    %s: %s\n", label, text.FgYellow.Sprint(value))
}

// DrawCapturedOutput echoes output captured from an external command.
func DrawCapturedOutput(w io.Writer, output string) {
	output = strings.TrimRight(output, "\n")
	if output == "" {
		return
	}
	fmt.Fprintln(w, output)
}
