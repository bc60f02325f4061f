// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"github.com/nicolas-werner/elex/internal/config"
	"gorm.io/gorm"
)

// ToolContext holds shared dependencies for all tools.
// DB is nil when no annotation store is configured; tools that need
// persistence report that instead of failing hard.
type ToolContext struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewToolContext creates a new tool context
func NewToolContext(db *gorm.DB, cfg *config.Config) *ToolContext {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &ToolContext{
		DB:     db,
		Config: cfg,
	}
}

// HasStore returns true if an annotation store is available
func (tc *ToolContext) HasStore() bool {
	return tc.DB != nil
}
