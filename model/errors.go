package model

import (
	"os/exec"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUsage is returned when the command line is malformed.
	ErrUsage = errors.New("usage error")

	// ErrBillingAccountNotFound is returned when the billing account listing has no data row.
	ErrBillingAccountNotFound = errors.New("no billing account found in listing")

	// ErrFunctionURLNotFound is returned when the deployment output has no "url:" line.
	ErrFunctionURLNotFound = errors.New("no function url found in deployment output")

	// ErrTimezoneNotResolved is returned when the local timezone matches no zoneinfo file.
	ErrTimezoneNotResolved = errors.New("local timezone could not be resolved")

	// ErrConfigCommand is returned when a configuration file tries to run an external command.
	ErrConfigCommand = errors.New("external commands are not allowed in configuration files")
)

// ExitCode extracts the process exit status carried by err.
// Returns 0 for nil, the exit status of a failed external command if one is
// wrapped, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	return 1
}
