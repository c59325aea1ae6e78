package gcpidentity

import (
	"context"
	"fmt"

	"github.com/elC0mpa/gcf-provisioner/model"
	gcpconfig "github.com/elC0mpa/gcf-provisioner/service/gcp/config"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID string, opts ...option.ClientOption) (*service, error) {
	client, err := cloudresourcemanager.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Resource Manager client: %w", err)
	}

	return &service{
		projectID: projectID,
		client:    client,
	}, nil
}

func (s *service) Kind() string {
	return "Project"
}

// GetStatus implements service.ResourceService
func (s *service) GetStatus(ctx context.Context) (*model.ResourceStatus, error) {
	project, err := s.GetProjectInfo(ctx)
	if gcpconfig.IsNotFound(err) {
		return &model.ResourceStatus{Kind: s.Kind(), Name: s.projectID, State: model.StateNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", s.projectID, err)
	}

	return &model.ResourceStatus{
		Kind:   s.Kind(),
		Name:   project.ProjectId,
		State:  project.LifecycleState,
		Detail: fmt.Sprintf("number %d", project.ProjectNumber),
	}, nil
}

// GetProjectInfo returns detailed GCP project information
func (s *service) GetProjectInfo(ctx context.Context) (*cloudresourcemanager.Project, error) {
	return s.client.Projects.Get(s.projectID).Context(ctx).Do()
}
