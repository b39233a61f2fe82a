package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/hulo/internal/ambient"
	"github.com/gorewood/hulo/internal/config"
	hulomcp "github.com/gorewood/hulo/internal/mcp"
	"github.com/gorewood/hulo/internal/prefs"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return newServeCmdInternal(nil)
}

// newServeCmdInternal creates the serve command with optional dependency injection.
func newServeCmdInternal(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run hulo as a Model Context Protocol (MCP) server over stdio.

This lets MCP-capable agents read and write your journal. Entries are
logged against your configured username; set one with
'hulo username <name>'. The username is read on every call, so setting
or changing it takes effect without restarting the server.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "hulo": {
        "command": "hulo",
        "args": ["serve", "--global"]
      }
    }
  }

Available tools: log, read`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := serveBackend(cmd, d)
			if err != nil {
				return err
			}
			newPrinter(cmd).Stderr("hulo %s serving MCP on stdio (journal: %s)\n", buildVersion(), backend.Store.Path())
			server := hulomcp.NewServer(buildVersion(), backend)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

// serveBackend wires the MCP tools to the journal. No prompter is given:
// stdio belongs to the protocol. Unless injected, preferences are re-read
// on each tool call.
func serveBackend(cmd *cobra.Command, d *deps) (hulomcp.Backend, error) {
	env := resolveDeps(cmd, d)

	store, err := env.openStore(cmd)
	if err != nil {
		return hulomcp.Backend{}, err
	}
	settings := env.prefs
	if settings == nil {
		if _, err := env.preferences(); err != nil {
			return hulomcp.Backend{}, err
		}
		settings = prefs.NewLive(config.SettingsPath())
	}

	return hulomcp.Backend{
		Store:    store,
		Resolver: ambient.NewResolver(env.git, settings, nil),
		Getwd:    env.getwd,
		Now:      env.now,
	}, nil
}
