// Package mcp provides a Model Context Protocol server for hulo.
// It exposes the journal as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/hulo/internal/ambient"
	"github.com/gorewood/hulo/internal/journal"
)

// Backend is what the tools operate on.
type Backend struct {
	Store    *journal.FileStore
	Resolver *ambient.Resolver
	// Getwd reports the directory recorded on new entries.
	Getwd func() (string, error)
	Now   func() time.Time
}

// NewServer creates an MCP server with all hulo tools registered.
func NewServer(version string, backend Backend) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "hulo",
		Version: version,
	}, nil)
	registerTools(server, backend)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all hulo tools to the server.
func registerTools(server *mcp.Server, backend Backend) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "read",
		Description: "Return the most recent journal entries, oldest first. count defaults to 1; all=true returns every entry.",
		Annotations: readOnlyAnnotations(),
	}, handleRead(backend))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log",
		Description: "Append a journal entry with the given message, tagged with the configured username, git context and working directory.",
		Annotations: writeAnnotations(),
	}, handleLog(backend))
}
