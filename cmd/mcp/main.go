package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/elC0mpa/gcf-provisioner/cmd/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	s := server.NewMCPServer(
		"gcf-provisioner-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterProvisioningTools(s, tools.Options{
		ConfigPath:    cfg.ConfigPath,
		GcloudPath:    cfg.GcloudPath,
		LocaltimePath: cfg.LocaltimePath,
		ZoneinfoPath:  cfg.ZoneinfoPath,
	})

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
