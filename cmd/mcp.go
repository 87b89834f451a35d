package cmd

import (
	"github.com/beaconlabs/beacon/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Beacon MCP server",
	Long:  `Launch an MCP server that allows AI agents to render report categories via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// No positional report path in MCP mode; tools pass their own.
		return sharedSetup(rootCtx, cmd, nil)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}
