// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nicolas-werner/elex/internal/config"
	"github.com/nicolas-werner/elex/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

const testEAF = `<?xml version="1.0" encoding="UTF-8"?>
<ANNOTATION_DOCUMENT AUTHOR="tester" FORMAT="3.0" VERSION="3.0">
    <TIME_ORDER>
        <TIME_SLOT TIME_SLOT_ID="ts1" TIME_VALUE="0"/>
        <TIME_SLOT TIME_SLOT_ID="ts2" TIME_VALUE="900"/>
    </TIME_ORDER>
    <TIER TIER_ID="utterance" LINGUISTIC_TYPE_REF="default-lt">
        <ANNOTATION>
            <ALIGNABLE_ANNOTATION ANNOTATION_ID="ann1" TIME_SLOT_REF1="ts1" TIME_SLOT_REF2="ts2">
                <ANNOTATION_VALUE>hello world</ANNOTATION_VALUE>
            </ALIGNABLE_ANNOTATION>
        </ANNOTATION>
    </TIER>
    <TIER TIER_ID="words" LINGUISTIC_TYPE_REF="symbolic" PARENT_REF="utterance">
        <ANNOTATION>
            <REF_ANNOTATION ANNOTATION_ID="ann2" ANNOTATION_REF="ann1">
                <ANNOTATION_VALUE>hello</ANNOTATION_VALUE>
            </REF_ANNOTATION>
        </ANNOTATION>
        <ANNOTATION>
            <REF_ANNOTATION ANNOTATION_ID="ann3" ANNOTATION_REF="ann1" PREVIOUS_ANNOTATION="ann2">
                <ANNOTATION_VALUE>world</ANNOTATION_VALUE>
            </REF_ANNOTATION>
        </ANNOTATION>
    </TIER>
</ANNOTATION_DOCUMENT>`

func setupToolContext(t *testing.T) (*ToolContext, string) {
	t.Helper()
	tempDir := t.TempDir()

	db, err := database.Connect(&database.Config{
		Type:       "sqlite",
		SQLitePath: filepath.Join(tempDir, "elex.db"),
		LogLevel:   logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	eafPath := filepath.Join(tempDir, "session.eaf")
	require.NoError(t, os.WriteFile(eafPath, []byte(testEAF), 0644))

	return NewToolContext(db, config.DefaultConfig()), eafPath
}

// getResultText extracts text from CallToolResult
func getResultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := result.Content[0].(mcp.TextContent); ok {
		return textContent.Text
	}
	return ""
}

func callExtract(t *testing.T, ctx *ToolContext, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	result, err := ExtractHandler(ctx)(context.Background(), request)
	require.NoError(t, err)
	return result
}

func TestExtractTool(t *testing.T) {
	ctx, eafPath := setupToolContext(t)

	result := callExtract(t, ctx, map[string]interface{}{"path": eafPath})
	assert.False(t, result.IsError)

	var payload struct {
		Path    string `json:"path"`
		Records []struct {
			AnnotationID string   `json:"annotation_id"`
			TierID       string   `json:"tier_id"`
			Duration     *float64 `json:"duration"`
		} `json:"records"`
		Summary []struct {
			TierID  string `json:"tier_id"`
			Records int    `json:"records"`
		} `json:"summary"`
		Stored bool `json:"stored"`
	}
	require.NoError(t, json.Unmarshal([]byte(getResultText(result)), &payload))

	assert.Equal(t, eafPath, payload.Path)
	require.Len(t, payload.Records, 3)
	assert.Equal(t, "ann1", payload.Records[0].AnnotationID)
	require.NotNil(t, payload.Records[1].Duration)
	assert.Equal(t, 900.0, *payload.Records[1].Duration)
	require.Len(t, payload.Summary, 2)
	assert.Equal(t, "utterance", payload.Summary[0].TierID)
	assert.False(t, payload.Stored)
}

func TestExtractToolDistribute(t *testing.T) {
	ctx, eafPath := setupToolContext(t)

	result := callExtract(t, ctx, map[string]interface{}{
		"path":       eafPath,
		"distribute": true,
	})
	assert.False(t, result.IsError)

	var payload struct {
		Records []struct {
			AnnotationID string   `json:"annotation_id"`
			Duration     *float64 `json:"duration"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(getResultText(result)), &payload))
	require.Len(t, payload.Records, 3)

	// Parent keeps its span; the two children split it
	require.NotNil(t, payload.Records[0].Duration)
	assert.Equal(t, 900.0, *payload.Records[0].Duration)
	for _, rec := range payload.Records[1:] {
		require.NotNil(t, rec.Duration)
		assert.Equal(t, 450.0, *rec.Duration)
	}
}

func TestExtractToolMissingPath(t *testing.T) {
	ctx, _ := setupToolContext(t)

	result := callExtract(t, ctx, map[string]interface{}{})
	assert.True(t, result.IsError)
}

func TestExtractToolBadFile(t *testing.T) {
	ctx, _ := setupToolContext(t)

	result := callExtract(t, ctx, map[string]interface{}{
		"path": filepath.Join(t.TempDir(), "missing.eaf"),
	})
	assert.True(t, result.IsError)
	assert.Contains(t, getResultText(result), "failed to parse")
}

func TestExtractToolStoreAndQuery(t *testing.T) {
	ctx, eafPath := setupToolContext(t)

	result := callExtract(t, ctx, map[string]interface{}{
		"path":  eafPath,
		"store": true,
	})
	assert.False(t, result.IsError)

	// elex_files lists the stored extraction
	request := mcp.CallToolRequest{}
	filesResult, err := FilesHandler(ctx)(context.Background(), request)
	require.NoError(t, err)
	assert.False(t, filesResult.IsError)

	var files []database.ElexFile
	require.NoError(t, json.Unmarshal([]byte(getResultText(filesResult)), &files))
	require.Len(t, files, 1)
	assert.Equal(t, eafPath, files[0].Path)
	assert.Equal(t, 3, files[0].Annotations)

	// elex_query reads the rows back, filtered by tier
	queryRequest := mcp.CallToolRequest{}
	queryRequest.Params.Arguments = map[string]interface{}{
		"path": eafPath,
		"tier": "words",
	}
	queryResult, err := QueryHandler(ctx)(context.Background(), queryRequest)
	require.NoError(t, err)
	assert.False(t, queryResult.IsError)

	var rows []database.ElexAnnotation
	require.NoError(t, json.Unmarshal([]byte(getResultText(queryResult)), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "ann2", rows[0].AnnotationID)
	assert.Equal(t, "ann3", rows[1].AnnotationID)
}

func TestQueryToolUnknownFile(t *testing.T) {
	ctx, _ := setupToolContext(t)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{
		"path": "/corpus/never-extracted.eaf",
	}
	result, err := QueryHandler(ctx)(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, getResultText(result), "file not found")
}

func TestToolsWithoutStore(t *testing.T) {
	ctx := NewToolContext(nil, config.DefaultConfig())

	request := mcp.CallToolRequest{}
	result, err := FilesHandler(ctx)(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, getResultText(result), "annotation store not available")
}
