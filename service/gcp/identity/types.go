package gcpidentity

import (
	"context"

	"github.com/elC0mpa/gcf-provisioner/model"
	"google.golang.org/api/cloudresourcemanager/v1"
)

type service struct {
	projectID string
	client    *cloudresourcemanager.Service
}

type IdentityService interface {
	Kind() string
	GetStatus(ctx context.Context) (*model.ResourceStatus, error)
	GetProjectInfo(ctx context.Context) (*cloudresourcemanager.Project, error)
}
