package config

import (
	"context"

	"github.com/elC0mpa/gcf-provisioner/model"
)

type service struct {
	environ []string
}

type ConfigService interface {
	Load(ctx context.Context, path string) (model.Config, error)
}
