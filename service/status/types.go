package status

import (
	"context"
	"io"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/elC0mpa/gcf-provisioner/service"
)

type statusService struct {
	projectID string
	resources []service.ResourceService
	closers   []io.Closer
}

type StatusService interface {
	GetStatus(ctx context.Context) (*model.ProvisioningStatus, error)
	Close() error
}
