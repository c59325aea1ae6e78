package main

import (
	"fmt"
	"io"
	"os"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/elC0mpa/gcf-provisioner/service/config"
	"github.com/elC0mpa/gcf-provisioner/service/flag"
	"github.com/elC0mpa/gcf-provisioner/service/gcloud"
	"github.com/elC0mpa/gcf-provisioner/service/orchestrator"
	"github.com/elC0mpa/gcf-provisioner/service/status"
	"github.com/elC0mpa/gcf-provisioner/service/timezone"
	"github.com/elC0mpa/gcf-provisioner/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	flagService := flag.NewService()

	cmd := &cobra.Command{
		Use:   "gcf-provisioner <config-file>",
		Short: "Provision a GCP project running the Slack cleaner Cloud Function on a schedule",
		Long: `Provision a GCP project end-to-end with the gcloud CLI.

The configuration file is a shell script of variable assignments defining
project_name, service_account, secret_name, slack_token, function_name,
function_region, function_source_path, days, app_region, job_name and
job_schedule.

Steps run in a fixed order and the first failure aborts the run. Resources
created before the failure are left in place.

Examples:
  # Provision everything described in slack-cleaner.sh
  gcf-provisioner slack-cleaner.sh

  # Show the gcloud commands without running them
  gcf-provisioner --dry-run slack-cleaner.sh`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, cfg, err := prepare(cmd, flagService, stderr, args)
			if err != nil {
				return err
			}
			if !flags.NoBanner {
				utils.DrawBanner(stdout, cfg.ProjectName)
			}

			var gcloudService gcloud.GcloudService = gcloud.NewService(flags.GcloudPath, stdout, stderr)
			if flags.DryRun {
				gcloudService = gcloud.NewDryRunService(flags.GcloudPath, stdout)
			}
			timezoneService := timezone.NewService(afero.NewOsFs(), flags.LocaltimePath, flags.ZoneinfoPath)

			report, err := orchestrator.NewService(gcloudService, timezoneService, stdout).Orchestrate(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if !flags.DryRun {
				utils.DrawRunSummary(stdout, report)
				utils.DrawStepDurationChart(stdout, report.Steps)
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := flagService.Register(cmd.PersistentFlags()); err != nil {
		panic(err)
	}

	cmd.AddCommand(newStatusCommand(flagService, stdout, stderr))

	return cmd
}

func newStatusCommand(flagService flag.FlagService, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "status <config-file>",
		Short: "Report the state of the resources described by a configuration file",
		Long: `Query Google Cloud APIs for the project, billing link, secret, function and
scheduler job that provisioning creates. Nothing is modified.

Credentials come from Application Default Credentials
(gcloud auth application-default login or GOOGLE_APPLICATION_CREDENTIALS).`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := prepare(cmd, flagService, stderr, args)
			if err != nil {
				return err
			}

			utils.StartSpinner("Fetching provisioning status")
			statusService, err := status.NewDefaultService(cmd.Context(), cfg)
			if err != nil {
				utils.StopSpinner()
				return err
			}
			defer statusService.Close()

			result, err := statusService.GetStatus(cmd.Context())
			utils.StopSpinner()
			if err != nil {
				return err
			}

			utils.DrawStatusTable(stdout, result)
			return nil
		},
	}
}

// prepare parses flags, configures logging and loads the configuration file.
func prepare(cmd *cobra.Command, flagService flag.FlagService, stderr io.Writer, args []string) (model.Flags, model.Config, error) {
	flags, err := flagService.GetParsedFlags(args)
	if err != nil {
		return model.Flags{}, model.Config{}, err
	}

	utils.SetupColors(cmd.OutOrStdout())
	if err := utils.SetupLogger(stderr, flags.LogLevel); err != nil {
		return model.Flags{}, model.Config{}, fmt.Errorf("%w: %w", model.ErrUsage, err)
	}

	cfg, err := config.NewService(os.Environ()).Load(cmd.Context(), flags.ConfigPath)
	if err != nil {
		return model.Flags{}, model.Config{}, err
	}

	return flags, cfg, nil
}
