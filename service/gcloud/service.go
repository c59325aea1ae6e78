package gcloud

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/charmbracelet/log"
	"github.com/elC0mpa/gcf-provisioner/model"
)

const redacted = "<redacted>"

func NewService(binary string, stdout, stderr io.Writer) *service {
	return &service{
		binary: binary,
		stdout: stdout,
		stderr: stderr,
	}
}

// CheckInstalled implements GcloudService
func (s *service) CheckInstalled() (string, error) {
	path, err := exec.LookPath(s.binary)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH, install the Google Cloud SDK: %w", s.binary, err)
	}
	return path, nil
}

// Run implements GcloudService
func (s *service) Run(ctx context.Context, inv model.Invocation) (string, error) {
	log.Debug("running command", "command", Render(s.binary, inv))

	cmd := exec.CommandContext(ctx, s.binary, inv.Args...)
	cmd.Stdin = strings.NewReader(inv.Stdin)
	cmd.Stderr = s.stderr

	var out bytes.Buffer
	if inv.Capture {
		cmd.Stdout = &out
	} else {
		cmd.Stdout = s.stdout
	}

	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("%s %s: %w", s.binary, subcommand(inv.Args), err)
	}

	return out.String(), nil
}

// NewDryRunService returns a GcloudService that prints each invocation
// instead of executing it.
func NewDryRunService(binary string, out io.Writer) *dryRunService {
	return &dryRunService{
		binary: binary,
		out:    out,
	}
}

// CheckInstalled implements GcloudService
func (s *dryRunService) CheckInstalled() (string, error) {
	return s.binary, nil
}

// Run implements GcloudService
func (s *dryRunService) Run(_ context.Context, inv model.Invocation) (string, error) {
	s.invocations = append(s.invocations, inv)
	fmt.Fprintf(s.out, "$ %s\n", Render(s.binary, inv))
	return inv.DryRunOutput, nil
}

// Invocations returns every invocation received so far, in order.
func (s *dryRunService) Invocations() []model.Invocation {
	return s.invocations
}

// Render formats an invocation as a copy-pasteable shell command.
// The stdin payload is never included.
func Render(binary string, inv model.Invocation) string {
	rendered := shellescape.QuoteCommand(append([]string{binary}, inv.Args...))
	if inv.Stdin != "" {
		rendered += " <<< " + redacted
	}
	return rendered
}

// subcommand returns the leading non-flag arguments, e.g. "functions deploy".
func subcommand(args []string) string {
	var parts []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") || len(parts) == 3 {
			break
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
