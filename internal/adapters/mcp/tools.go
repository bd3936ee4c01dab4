// Package mcp exposes the diary's date math, feed, timeline and theme tokens
// as MCP tools.
package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"lovediary/internal/appearance"
	"lovediary/internal/ports"
)

// Deps are the collaborators the tool handlers work against
type Deps struct {
	Profiles   ports.ProfileStore
	Entries    ports.EntryRepository
	Milestones ports.MilestoneRepository
	Appearance *appearance.Resolver
	Now        func() time.Time // nil means time.Now
	Location   *time.Location   // nil means time.Local
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Register adds every tool to the MCP server
func Register(s *server.MCPServer, deps Deps) {
	RegisterReadTools(s, deps)
	RegisterWriteTools(s, deps)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
