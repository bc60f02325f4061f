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
	"gorm.io/gorm"
)

// NewQueryTool creates the elex_query tool definition
func NewQueryTool() mcp.Tool {
	return mcp.NewTool("elex_query",
		mcp.WithDescription("Query stored annotation records for a previously extracted .eaf file, in document order. Use elex_files to find stored files."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path of the stored .eaf file"),
		),
		mcp.WithString("tier",
			mcp.Description("Restrict results to one tier id"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of records to return (default: 100)"),
		),
	)
}

// QueryHandler handles the elex_query tool
func QueryHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		tier := request.GetString("tier", "")
		limit := int(request.GetFloat("limit", 100.0))

		if !ctx.HasStore() {
			return mcp.NewToolResultError("annotation store not available"), nil
		}

		file, err := database.FindFile(ctx.DB, path)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return mcp.NewToolResultError(fmt.Sprintf("file not found in store: %s", path)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("database error: %v", err)), nil
		}

		rows, err := database.Annotations(ctx.DB, file.ID, tier, limit)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to query annotations: %v", err)), nil
		}

		payload, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(payload)), nil
	}
}
