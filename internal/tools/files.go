// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nicolas-werner/elex/internal/database"
)

// NewFilesTool creates the elex_files tool definition
func NewFilesTool() mcp.Tool {
	return mcp.NewTool("elex_files",
		mcp.WithDescription("List .eaf files whose extracted annotations are in the annotation store, most recently updated first."),
	)
}

// FilesHandler handles the elex_files tool
func FilesHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !ctx.HasStore() {
			return mcp.NewToolResultError("annotation store not available"), nil
		}

		files, err := database.ListFiles(ctx.DB)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list files: %v", err)), nil
		}

		payload, err := json.MarshalIndent(files, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(payload)), nil
	}
}
