package status

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/elC0mpa/gcf-provisioner/service"
	gcpbilling "github.com/elC0mpa/gcf-provisioner/service/gcp/billing"
	gcpconfig "github.com/elC0mpa/gcf-provisioner/service/gcp/config"
	gcpfunctions "github.com/elC0mpa/gcf-provisioner/service/gcp/functions"
	gcpidentity "github.com/elC0mpa/gcf-provisioner/service/gcp/identity"
	gcpscheduler "github.com/elC0mpa/gcf-provisioner/service/gcp/scheduler"
	gcpsecrets "github.com/elC0mpa/gcf-provisioner/service/gcp/secrets"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

// maxConcurrentLookups bounds the number of API calls in flight.
const maxConcurrentLookups = 4

func NewService(projectID string, resources []service.ResourceService, closers ...io.Closer) *statusService {
	return &statusService{
		projectID: projectID,
		resources: resources,
		closers:   closers,
	}
}

// NewDefaultService builds a StatusService covering every resource the
// provisioner creates for cfg, authenticated with Application Default
// Credentials unless opts say otherwise.
func NewDefaultService(ctx context.Context, cfg model.Config, opts ...option.ClientOption) (*statusService, error) {
	if len(opts) == 0 {
		creds, err := gcpconfig.NewService().GetCredentials(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to find default credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	identitySvc, err := gcpidentity.NewService(ctx, cfg.ProjectName, opts...)
	if err != nil {
		return nil, err
	}
	billingSvc, err := gcpbilling.NewService(ctx, cfg.ProjectName, opts...)
	if err != nil {
		return nil, err
	}
	secretsSvc, err := gcpsecrets.NewService(ctx, cfg.ProjectName, cfg.SecretName, opts...)
	if err != nil {
		return nil, err
	}
	functionsSvc, err := gcpfunctions.NewService(ctx, cfg.ProjectName, cfg.FunctionRegion, cfg.FunctionName, opts...)
	if err != nil {
		secretsSvc.Close()
		return nil, err
	}
	schedulerSvc, err := gcpscheduler.NewService(ctx, cfg.ProjectName, cfg.AppRegion, cfg.JobName, opts...)
	if err != nil {
		secretsSvc.Close()
		return nil, err
	}

	resources := []service.ResourceService{identitySvc, billingSvc, secretsSvc, functionsSvc, schedulerSvc}
	return NewService(cfg.ProjectName, resources, secretsSvc), nil
}

// GetStatus implements StatusService.
// Lookups run concurrently; a failed lookup is reported as an ERROR row
// instead of failing the whole report.
func (s *statusService) GetStatus(ctx context.Context) (*model.ProvisioningStatus, error) {
	results := make([]model.ResourceStatus, len(s.resources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, resource := range s.resources {
		g.Go(func() error {
			st, err := resource.GetStatus(gctx)
			if err != nil {
				log.Debug("status lookup failed", "kind", resource.Kind(), "err", err)
				results[i] = model.ResourceStatus{Kind: resource.Kind(), State: model.StateError, Detail: err.Error()}
				return nil
			}
			results[i] = *st
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &model.ProvisioningStatus{
		ProjectID: s.projectID,
		Resources: results,
	}, nil
}

// Close releases every client that holds a connection.
func (s *statusService) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
