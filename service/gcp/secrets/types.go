package gcpsecrets

import (
	"context"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/googleapis/gax-go/v2"
)

// secretClient is the subset of *secretmanager.Client used here.
type secretClient interface {
	GetSecret(ctx context.Context, req *secretmanagerpb.GetSecretRequest, opts ...gax.CallOption) (*secretmanagerpb.Secret, error)
	Close() error
}

type service struct {
	name   string
	client secretClient
}

type SecretsService interface {
	Kind() string
	GetStatus(ctx context.Context) (*model.ResourceStatus, error)
	Close() error
}
