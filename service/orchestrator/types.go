package orchestrator

import (
	"context"
	"io"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/elC0mpa/gcf-provisioner/service/gcloud"
	"github.com/elC0mpa/gcf-provisioner/service/timezone"
)

type service struct {
	gcloud   gcloud.GcloudService
	timezone timezone.TimezoneService
	out      io.Writer
}

type OrchestratorService interface {
	// Orchestrate runs every provisioning step in order and stops at the first
	// failure. The returned report covers the steps that ran, even on error.
	Orchestrate(ctx context.Context, cfg model.Config) (*model.Report, error)
}
