// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/nicolas-werner/elex/internal/config"
	"github.com/nicolas-werner/elex/internal/tools"
	"gorm.io/gorm"
)

// ElexServer wraps the mcp-go server with our configuration
type ElexServer struct {
	mcpServer *server.MCPServer
	config    *config.Config
	db        *gorm.DB
}

// New creates a new MCP server instance and registers the extraction tools
func New(cfg *config.Config, db *gorm.DB) (*ElexServer, error) {
	mcpServer := server.NewMCPServer(
		"Elex",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	srv := &ElexServer{
		mcpServer: mcpServer,
		config:    cfg,
		db:        db,
	}

	toolCtx := tools.NewToolContext(db, cfg)

	// elex_extract: flatten a .eaf file into annotation records
	mcpServer.AddTool(tools.NewExtractTool(), tools.ExtractHandler(toolCtx))

	// elex_files: list extractions kept in the annotation store
	mcpServer.AddTool(tools.NewFilesTool(), tools.FilesHandler(toolCtx))

	// elex_query: read stored records back, filtered by tier
	mcpServer.AddTool(tools.NewQueryTool(), tools.QueryHandler(toolCtx))

	return srv, nil
}

// ServeStdio runs the server on stdin/stdout until the client disconnects
func (s *ElexServer) ServeStdio() error {
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("stdio server error: %w", err)
	}
	return nil
}

// GetMCPServer returns the underlying MCP server
func (s *ElexServer) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}
