package flag

import (
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type service struct {
	viper *viper.Viper
}

type FlagService interface {
	Register(fs *pflag.FlagSet) error
	GetParsedFlags(args []string) (model.Flags, error)
}
