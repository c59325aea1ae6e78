package gcloud

import (
	"context"
	"io"

	"github.com/elC0mpa/gcf-provisioner/model"
)

type service struct {
	binary string
	stdout io.Writer
	stderr io.Writer
}

type dryRunService struct {
	binary      string
	out         io.Writer
	invocations []model.Invocation
}

type GcloudService interface {
	// CheckInstalled resolves the gcloud binary and returns its path.
	CheckInstalled() (string, error)
	// Run executes one invocation and returns its stdout when Capture is set.
	Run(ctx context.Context, inv model.Invocation) (string, error)
}
