package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/hulo/internal/journal"
)

// --- Read tool ---

// ReadInput is the input for the read tool.
type ReadInput struct {
	Count int  `json:"count,omitempty" jsonschema:"number of recent entries to return (default 1)"`
	All   bool `json:"all,omitempty"   jsonschema:"return every entry, ignoring count"`
}

// ReadOutput is the output for the read tool.
type ReadOutput struct {
	Total   int              `json:"total"   jsonschema:"number of entries in the journal"`
	Entries []*journal.Entry `json:"entries" jsonschema:"selected entries, oldest first"`
}

func handleRead(backend Backend) mcp.ToolHandlerFor[ReadInput, ReadOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ReadInput) (*mcp.CallToolResult, ReadOutput, error) {
		all, err := backend.Store.All()
		if err != nil {
			return nil, ReadOutput{}, fmt.Errorf("reading journal: %w", err)
		}

		selected := all
		if !input.All {
			selected, err = backend.Store.Last(journal.NormalizeCount(input.Count))
			if err != nil {
				return nil, ReadOutput{}, fmt.Errorf("reading journal: %w", err)
			}
		}
		if selected == nil {
			selected = []*journal.Entry{}
		}

		return nil, ReadOutput{Total: len(all), Entries: selected}, nil
	}
}

// --- Log tool ---

// LogInput is the input for the log tool.
type LogInput struct {
	Message string `json:"message" jsonschema:"text of the journal entry"`
}

// LogOutput is the output for the log tool.
type LogOutput struct {
	Entry *journal.Entry `json:"entry" jsonschema:"the entry that was written"`
}

func handleLog(backend Backend) mcp.ToolHandlerFor[LogInput, LogOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LogInput) (*mcp.CallToolResult, LogOutput, error) {
		if strings.TrimSpace(input.Message) == "" {
			return nil, LogOutput{}, errors.New("message is required")
		}

		// The server has no terminal, so the resolver is built without a
		// prompter and an unset username is an error here.
		username, _, err := backend.Resolver.EnsureUsername(ctx)
		if err != nil {
			return nil, LogOutput{}, err
		}

		dir, err := backend.getwd()
		if err != nil {
			return nil, LogOutput{}, fmt.Errorf("getting working directory: %w", err)
		}

		entry, err := backend.Store.Log(backend.Resolver.Snapshot(dir, username), input.Message, backend.now())
		if err != nil {
			return nil, LogOutput{}, fmt.Errorf("writing entry: %w", err)
		}
		return nil, LogOutput{Entry: entry}, nil
	}
}

func (b Backend) getwd() (string, error) {
	if b.Getwd != nil {
		return b.Getwd()
	}
	return os.Getwd()
}

func (b Backend) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}
