package main

import (
	"github.com/spf13/cobra"

	"github.com/urldial/urldial/mcpserver"
	"github.com/urldial/urldial/version"
)

func newMCPCommand(info *version.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve parse and check as MCP tools on stdio",
		Long: `Starts a Model Context Protocol server on stdin/stdout exposing the
url_parse and url_check tools for agent integrations. All logging goes
to stderr so the protocol stream stays clean.`,
		Example: `  urldial mcp`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.ServeStdio(info.Version)
		},
	}
}
