package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd, err := newRootCommand(os.Stdout, os.Stderr).ExecuteContextC(ctx)
	stop()

	if err != nil {
		os.Exit(reportError(os.Stderr, cmd, err))
	}
}

// reportError prints err for the command that produced it and returns the
// process exit code. Usage errors are followed by the command's usage.
func reportError(w io.Writer, cmd *cobra.Command, err error) int {
	if errors.Is(err, model.ErrUsage) {
		fmt.Fprintf(w, "Error: %v\n\n", err)
		if cmd != nil {
			fmt.Fprint(w, cmd.UsageString())
		}
		return model.ExitCode(err)
	}

	name := "gcf-provisioner"
	if cmd != nil {
		name = cmd.CommandPath()
	}
	log.Error("command failed", "command", name, "err", err)
	return model.ExitCode(err)
}
