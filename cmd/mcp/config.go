package main

import (
	"github.com/elC0mpa/gcf-provisioner/service/flag"
	"github.com/elC0mpa/gcf-provisioner/service/timezone"
	"github.com/spf13/viper"
)

// Config holds environment-based configuration for the MCP server
type Config struct {
	// Default provisioning configuration file, used when a tool call omits config_path
	ConfigPath string

	// Binary rendered in planned commands
	GcloudPath string

	// Timezone resolution
	LocaltimePath string
	ZoneinfoPath  string
}

// LoadConfig reads configuration from GCF_PROVISIONER_* environment
// variables, the same ones the CLI flags fall back to.
func LoadConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(flag.EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("gcloud", "gcloud")
	v.SetDefault("localtime", timezone.DefaultLocaltime)
	v.SetDefault("zoneinfo", timezone.DefaultZoneinfo)

	return &Config{
		ConfigPath:    v.GetString("config"),
		GcloudPath:    v.GetString("gcloud"),
		LocaltimePath: v.GetString("localtime"),
		ZoneinfoPath:  v.GetString("zoneinfo"),
	}
}
