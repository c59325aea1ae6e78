package model

import "fmt"

// Config holds the provisioning settings read from the configuration file.
// It is loaded once and passed by value, never mutated afterwards.
type Config struct {
	ProjectName        string `mapstructure:"project_name"`
	ServiceAccount     string `mapstructure:"service_account"`
	SecretName         string `mapstructure:"secret_name"`
	SlackToken         string `mapstructure:"slack_token"`
	FunctionName       string `mapstructure:"function_name"`
	FunctionRegion     string `mapstructure:"function_region"`
	FunctionSourcePath string `mapstructure:"function_source_path"`
	Days               string `mapstructure:"days"`
	AppRegion          string `mapstructure:"app_region"`
	JobName            string `mapstructure:"job_name"`
	JobSchedule        string `mapstructure:"job_schedule"`
}

// ConfigKeys lists every variable a configuration file is expected to define.
var ConfigKeys = []string{
	"project_name",
	"service_account",
	"secret_name",
	"slack_token",
	"function_name",
	"function_region",
	"function_source_path",
	"days",
	"app_region",
	"job_name",
	"job_schedule",
}

// ServiceAccountEmail returns the email of the service account created inside the project.
func (c Config) ServiceAccountEmail() string {
	return fmt.Sprintf("%s@%s.iam.gserviceaccount.com", c.ServiceAccount, c.ProjectName)
}
