package gcpfunctions

import (
	"context"

	"github.com/elC0mpa/gcf-provisioner/model"
	"google.golang.org/api/cloudfunctions/v1"
)

type service struct {
	name   string
	client *cloudfunctions.Service
}

type FunctionsService interface {
	Kind() string
	GetStatus(ctx context.Context) (*model.ResourceStatus, error)
}
