// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

// Config represents the complete application configuration
type Config struct {
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Output     OutputConfig     `mapstructure:"output"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

// ExtractionConfig holds options for the annotation extraction pipeline
type ExtractionConfig struct {
	// DistributeDuration splits a parent annotation's duration evenly
	// among its same-tier children when enabled.
	DistributeDuration bool `mapstructure:"distribute_duration"`
}

// OutputConfig holds serialization settings for extracted records
type OutputConfig struct {
	Format   string `mapstructure:"format"`    // "csv", "json" or "yaml"
	NAMarker string `mapstructure:"na_marker"` // rendered for unknown values in CSV
}

// DatabaseConfig holds annotation store connection settings
type DatabaseConfig struct {
	Type        string `mapstructure:"type"` // "sqlite" or "postgres"
	SQLitePath  string `mapstructure:"sqlite_path"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
}
