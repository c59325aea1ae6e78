package gcpscheduler

import (
	"context"

	"github.com/elC0mpa/gcf-provisioner/model"
	"google.golang.org/api/cloudscheduler/v1"
)

type service struct {
	name   string
	client *cloudscheduler.Service
}

type SchedulerService interface {
	Kind() string
	GetStatus(ctx context.Context) (*model.ResourceStatus, error)
}
