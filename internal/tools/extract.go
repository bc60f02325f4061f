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
	"github.com/nicolas-werner/elex/internal/eaf"
	"github.com/nicolas-werner/elex/internal/extract"
)

// extractResult is the JSON payload returned by the elex_extract tool
type extractResult struct {
	Path    string                `json:"path"`
	Records []extract.Record      `json:"records"`
	Summary []extract.TierSummary `json:"summary"`
	Stored  bool                  `json:"stored"`
	FileID  uint                  `json:"file_id,omitempty"`
}

// NewExtractTool creates the elex_extract tool definition
func NewExtractTool() mcp.Tool {
	return mcp.NewTool("elex_extract",
		mcp.WithDescription("Extract annotation records from an ELAN (.eaf) file. Returns one flat record per annotation with resolved time slots and durations, plus a per-tier summary."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the .eaf file to extract"),
		),
		mcp.WithBoolean("distribute",
			mcp.Description("Distribute each parent annotation's duration evenly among its same-tier children (default: configured value)"),
		),
		mcp.WithBoolean("store",
			mcp.Description("Persist the extracted records to the annotation store (default: false)"),
		),
	)
}

// ExtractHandler handles the elex_extract tool
func ExtractHandler(ctx *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		distribute := request.GetBool("distribute", ctx.Config.Extraction.DistributeDuration)
		store := request.GetBool("store", false)

		doc, err := eaf.ParseFile(path)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse file: %v", err)), nil
		}

		records, err := extract.Extract(doc, extract.Options{DistributeDuration: distribute})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
		}

		result := extractResult{
			Path:    path,
			Records: records,
			Summary: extract.Summarize(records),
		}

		if store {
			if !ctx.HasStore() {
				return mcp.NewToolResultError("annotation store not available"), nil
			}
			file, err := database.SaveExtraction(ctx.DB, path, doc, records, distribute)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to store extraction: %v", err)), nil
			}
			result.Stored = true
			result.FileID = file.ID
		}

		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(payload)), nil
	}
}
