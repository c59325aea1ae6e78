package gcpbilling

import (
	"context"
	"fmt"
	"strings"

	"github.com/elC0mpa/gcf-provisioner/model"
	gcpconfig "github.com/elC0mpa/gcf-provisioner/service/gcp/config"
	"google.golang.org/api/cloudbilling/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID string, opts ...option.ClientOption) (*service, error) {
	client, err := cloudbilling.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Billing client: %w", err)
	}

	return &service{
		projectID: projectID,
		client:    client,
	}, nil
}

func (s *service) Kind() string {
	return "Billing"
}

// GetStatus implements service.ResourceService
func (s *service) GetStatus(ctx context.Context) (*model.ResourceStatus, error) {
	info, err := s.client.Projects.GetBillingInfo("projects/" + s.projectID).Context(ctx).Do()
	if gcpconfig.IsNotFound(err) {
		return &model.ResourceStatus{Kind: s.Kind(), Name: s.projectID, State: model.StateNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get billing info for %s: %w", s.projectID, err)
	}

	state := "DISABLED"
	if info.BillingEnabled {
		state = "ENABLED"
	}

	return &model.ResourceStatus{
		Kind:   s.Kind(),
		Name:   strings.TrimPrefix(info.BillingAccountName, "billingAccounts/"),
		State:  state,
		Detail: "linked to " + s.projectID,
	}, nil
}
