package flag

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/elC0mpa/gcf-provisioner/service/timezone"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every flag name when read from the environment,
// e.g. GCF_PROVISIONER_GCLOUD for --gcloud.
const EnvPrefix = "GCF_PROVISIONER"

func NewService() *service {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &service{
		viper: v,
	}
}

// Register declares the provisioner flags on fs and binds them so that
// environment variables act as defaults.
func (s *service) Register(fs *pflag.FlagSet) error {
	fs.String("gcloud", "gcloud", "gcloud binary to invoke")
	fs.Bool("dry-run", false, "Print the gcloud commands without running them")
	fs.String("localtime", timezone.DefaultLocaltime, "Local timezone file")
	fs.String("zoneinfo", timezone.DefaultZoneinfo, "Timezone database directory")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.Bool("no-banner", false, "Do not draw the startup banner")

	return s.viper.BindPFlags(fs)
}

// GetParsedFlags implements FlagService
func (s *service) GetParsedFlags(args []string) (model.Flags, error) {
	if len(args) != 1 || args[0] == "" {
		return model.Flags{}, fmt.Errorf("%w: expected exactly one configuration file, got %d arguments", model.ErrUsage, len(args))
	}

	return model.Flags{
		ConfigPath:    args[0],
		GcloudPath:    s.viper.GetString("gcloud"),
		DryRun:        s.viper.GetBool("dry-run"),
		LocaltimePath: s.viper.GetString("localtime"),
		ZoneinfoPath:  s.viper.GetString("zoneinfo"),
		LogLevel:      s.viper.GetString("log-level"),
		NoBanner:      s.viper.GetBool("no-banner"),
	}, nil
}
