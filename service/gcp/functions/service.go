package gcpfunctions

import (
	"context"
	"fmt"

	"github.com/elC0mpa/gcf-provisioner/model"
	gcpconfig "github.com/elC0mpa/gcf-provisioner/service/gcp/config"
	"google.golang.org/api/cloudfunctions/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID, region, functionName string, opts ...option.ClientOption) (*service, error) {
	client, err := cloudfunctions.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Functions client: %w", err)
	}

	return &service{
		name:   fmt.Sprintf("projects/%s/locations/%s/functions/%s", projectID, region, functionName),
		client: client,
	}, nil
}

func (s *service) Kind() string {
	return "Function"
}

// GetStatus implements service.ResourceService
func (s *service) GetStatus(ctx context.Context) (*model.ResourceStatus, error) {
	fn, err := s.client.Projects.Locations.Functions.Get(s.name).Context(ctx).Do()
	if gcpconfig.IsNotFound(err) {
		return &model.ResourceStatus{Kind: s.Kind(), Name: s.name, State: model.StateNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get function %s: %w", s.name, err)
	}

	detail := fn.Runtime
	if fn.HttpsTrigger != nil {
		detail += " " + fn.HttpsTrigger.Url
	}

	return &model.ResourceStatus{
		Kind:   s.Kind(),
		Name:   fn.Name,
		State:  fn.Status,
		Detail: detail,
	}, nil
}
