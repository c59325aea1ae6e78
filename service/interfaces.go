package service

import (
	"context"

	"github.com/elC0mpa/gcf-provisioner/model"
)

// ResourceService reports the observed state of one provisioned resource
type ResourceService interface {
	Kind() string
	GetStatus(ctx context.Context) (*model.ResourceStatus, error)
}
