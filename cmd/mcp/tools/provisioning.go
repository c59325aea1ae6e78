package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/elC0mpa/gcf-provisioner/cmd/mcp/response"
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/elC0mpa/gcf-provisioner/service/config"
	"github.com/elC0mpa/gcf-provisioner/service/gcloud"
	"github.com/elC0mpa/gcf-provisioner/service/orchestrator"
	"github.com/elC0mpa/gcf-provisioner/service/status"
	"github.com/elC0mpa/gcf-provisioner/service/timezone"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"
)

// Options configures the provisioning tools
type Options struct {
	ConfigPath    string
	GcloudPath    string
	LocaltimePath string
	ZoneinfoPath  string
}

// RegisterProvisioningTools registers all provisioning tools with the MCP server
func RegisterProvisioningTools(s *server.MCPServer, opts Options) {
	// Planned commands
	s.AddTool(
		mcp.NewTool("plan_provisioning",
			mcp.WithDescription("List the gcloud commands a provisioning run would execute for a configuration file, in order. Nothing is executed and the Slack token is never included."),
			mcp.WithString("config_path",
				mcp.Description("Path to the shell configuration file. Defaults to GCF_PROVISIONER_CONFIG."),
			),
		),
		makePlanHandler(opts),
	)

	// Provisioned resources
	s.AddTool(
		mcp.NewTool("gcp_get_provisioning_status",
			mcp.WithDescription("Report whether the project, billing link, secret, Cloud Function and Cloud Scheduler job described by a configuration file exist. Uses Application Default Credentials."),
			mcp.WithString("config_path",
				mcp.Description("Path to the shell configuration file. Defaults to GCF_PROVISIONER_CONFIG."),
			),
		),
		makeStatusHandler(opts),
	)

	// Local timezone
	s.AddTool(
		mcp.NewTool("resolve_timezone",
			mcp.WithDescription("Resolve the IANA name of the local timezone used for the scheduler job, e.g. America/New_York."),
		),
		makeTimezoneHandler(opts),
	)
}

func makePlanHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg, err := loadConfig(ctx, request, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dryRun := gcloud.NewDryRunService(opts.GcloudPath, io.Discard)
		timezoneSvc := timezone.NewService(afero.NewOsFs(), opts.LocaltimePath, opts.ZoneinfoPath)

		report, err := orchestrator.NewService(dryRun, timezoneSvc, io.Discard).Orchestrate(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to plan provisioning: %v", err)), nil
		}

		resp := response.ConvertPlan(cfg.ProjectName, opts.GcloudPath, report, dryRun.Invocations())
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeStatusHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg, err := loadConfig(ctx, request, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if cfg.ProjectName == "" {
			return mcp.NewToolResultError("project_name is not set in the configuration file"), nil
		}

		statusSvc, err := status.NewDefaultService(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create status service: %v", err)), nil
		}
		defer statusSvc.Close()

		result, err := statusSvc.GetStatus(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get provisioning status: %v", err)), nil
		}

		resp := response.ConvertStatus(result)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeTimezoneHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := timezone.NewService(afero.NewOsFs(), opts.LocaltimePath, opts.ZoneinfoPath).Resolve()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve timezone: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.TimeZone{Name: name}, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func loadConfig(ctx context.Context, request mcp.CallToolRequest, opts Options) (model.Config, error) {
	path := request.GetString("config_path", opts.ConfigPath)
	if path == "" {
		return model.Config{}, fmt.Errorf("config_path argument or GCF_PROVISIONER_CONFIG environment variable is required")
	}

	return config.NewService(os.Environ()).Load(ctx, path)
}
