package gcpbilling

import (
	"context"

	"github.com/elC0mpa/gcf-provisioner/model"
	"google.golang.org/api/cloudbilling/v1"
)

type service struct {
	projectID string
	client    *cloudbilling.APIService
}

type BillingService interface {
	Kind() string
	GetStatus(ctx context.Context) (*model.ResourceStatus, error)
}
