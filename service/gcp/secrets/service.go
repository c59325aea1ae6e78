package gcpsecrets

import (
	"context"
	"fmt"
	"time"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/elC0mpa/gcf-provisioner/model"
	gcpconfig "github.com/elC0mpa/gcf-provisioner/service/gcp/config"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID, secretName string, opts ...option.ClientOption) (*service, error) {
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}

	return newService(client, projectID, secretName), nil
}

func newService(client secretClient, projectID, secretName string) *service {
	return &service{
		name:   fmt.Sprintf("projects/%s/secrets/%s", projectID, secretName),
		client: client,
	}
}

// Close closes the Secret Manager client
func (s *service) Close() error {
	return s.client.Close()
}

func (s *service) Kind() string {
	return "Secret"
}

// GetStatus implements service.ResourceService.
// Only secret metadata is read, never the payload.
func (s *service) GetStatus(ctx context.Context) (*model.ResourceStatus, error) {
	secret, err := s.client.GetSecret(ctx, &secretmanagerpb.GetSecretRequest{Name: s.name})
	if gcpconfig.IsNotFound(err) {
		return &model.ResourceStatus{Kind: s.Kind(), Name: s.name, State: model.StateNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get secret %s: %w", s.name, err)
	}

	replication := "user-managed"
	if secret.GetReplication().GetAutomatic() != nil {
		replication = "automatic"
	}

	return &model.ResourceStatus{
		Kind:   s.Kind(),
		Name:   secret.GetName(),
		State:  "ACTIVE",
		Detail: fmt.Sprintf("%s replication, created %s", replication, secret.GetCreateTime().AsTime().Format(time.RFC3339)),
	}, nil
}
