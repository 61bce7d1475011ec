package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/codeassist/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio exposing convert_code, debug_code and check_code_quality tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Stdout belongs to the MCP protocol; initLogger writes to stderr.
		logger := initLogger(cfg)

		g, err := newGateway(cfg, logger)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "codeassist MCP server started on stdio (provider=%s, model=%s)\n", cfg.Provider, cfg.Model)

		return mcpserver.NewServer(g).Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
