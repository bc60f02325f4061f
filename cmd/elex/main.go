// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nicolas-werner/elex/internal/config"
	"github.com/nicolas-werner/elex/internal/database"
	"github.com/nicolas-werner/elex/internal/eaf"
	"github.com/nicolas-werner/elex/internal/export"
	"github.com/nicolas-werner/elex/internal/extract"
	"github.com/nicolas-werner/elex/internal/server"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Version is set at build time via ldflags (e.g. goreleaser -X main.Version={{.Version}}).
var Version string

func main() {
	// Extracted tables and JSON-RPC go to stdout; keep logging on stderr.
	log.SetOutput(os.Stderr)

	// Define command-line flags
	serveMode := flag.Bool("serve", false, "Run as MCP server on stdio instead of extracting files")
	configPath := flag.String("config", "", "Path to config file")
	format := flag.String("format", "", "Output format: csv, json or yaml (default: configured value)")
	outPath := flag.String("out", "", "Write output to file instead of stdout")
	naMarker := flag.String("na", "", "Marker for unknown values in CSV output (default: NA)")
	distribute := flag.Bool("distribute", false, "Distribute parent durations evenly among same-tier children")
	store := flag.Bool("store", false, "Persist extracted records to the annotation store")
	dbType := flag.String("db-type", "", "Database type (sqlite or postgres)")
	dbPath := flag.String("db-path", "", "Database path (for sqlite)")
	dbDSN := flag.String("db-dsn", "", "Database DSN (for postgres)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Elex - ELAN annotation extractor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.eaf [file.eaf ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extraction:\n")
		fmt.Fprintf(os.Stderr, "  %s corpus.eaf                     Extract to CSV on stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --format json corpus.eaf       Extract as JSON\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --distribute corpus.eaf        Split parent durations among children\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --store a.eaf b.eaf            Persist extractions to the annotation store\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nServer Mode:\n")
		fmt.Fprintf(os.Stderr, "  %s --serve                        Start MCP server (stdio)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  ELEX_DB_TYPE       Database type (sqlite or postgres)\n")
		fmt.Fprintf(os.Stderr, "  ELEX_DB_PATH       SQLite database path\n")
		fmt.Fprintf(os.Stderr, "  ELEX_DB_DSN        PostgreSQL connection string\n")
		fmt.Fprintf(os.Stderr, "  ELEX_FORMAT        Output format (csv, json or yaml)\n")
	}

	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error

	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config from %s: %v", *configPath, err)
		}
		log.Printf("Loaded configuration from %s", *configPath)
	} else {
		cfg, err = config.Load()
		if err != nil {
			log.Printf("Warning: Failed to load default config: %v", err)
			log.Println("Using built-in defaults")
			cfg = config.DefaultConfig()
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Apply CLI flag overrides (highest priority)
	applyCLIOverrides(cfg, *dbType, *dbPath, *dbDSN, *format, *naMarker)
	if *distribute {
		cfg.Extraction.DistributeDuration = true
	}

	if *serveMode {
		runServeMode(cfg)
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if len(files) > 1 && *outPath != "" {
		log.Fatal("ERROR: --out accepts a single input file")
	}
	if len(files) > 1 && !*store {
		log.Fatal("ERROR: extracting multiple files requires --store")
	}

	var db *gorm.DB
	if *store {
		db = connectStore(cfg)
		defer database.Close(db)
	}

	runExtractMode(cfg, db, files, *outPath, *store)
}

// runExtractMode extracts each input file, optionally persists it, and
// writes the serialized records of a single-file invocation
func runExtractMode(cfg *config.Config, db *gorm.DB, files []string, outPath string, store bool) {
	opts := extract.Options{DistributeDuration: cfg.Extraction.DistributeDuration}
	writer := export.NewWriter(export.Format(cfg.Output.Format), cfg.Output.NAMarker)

	for _, path := range files {
		doc, err := eaf.ParseFile(path)
		if err != nil {
			log.Fatalf("Failed to parse %s: %v", path, err)
		}

		records, err := extract.Extract(doc, opts)
		if err != nil {
			log.Fatalf("Extraction failed for %s: %v", path, err)
		}

		for _, s := range extract.Summarize(records) {
			log.Printf("%s: tier %-20s %4d records, %d with duration", path, s.TierID, s.Records, s.KnownDurations)
		}

		if store {
			file, err := database.SaveExtraction(db, path, doc, records, opts.DistributeDuration)
			if err != nil {
				log.Fatalf("Failed to store extraction for %s: %v", path, err)
			}
			log.Printf("Stored %d records for %s (file id %d)", len(records), path, file.ID)
			continue
		}

		out, closeOut, err := openOutput(outPath)
		if err != nil {
			log.Fatalf("Failed to open output: %v", err)
		}
		if err := writer.Write(out, records); err != nil {
			closeOut()
			log.Fatalf("Failed to write output: %v", err)
		}
		if err := closeOut(); err != nil {
			log.Fatalf("Failed to close output: %v", err)
		}
	}
}

// runServeMode starts the MCP stdio server. The annotation store is
// optional here; without it the query tools report unavailability.
func runServeMode(cfg *config.Config) {
	log.Println("Starting Elex MCP server (stdio)")

	db, err := database.Connect(&database.Config{
		Type:        cfg.Database.Type,
		SQLitePath:  cfg.Database.SQLitePath,
		PostgresDSN: cfg.Database.PostgresDSN,
		LogLevel:    logger.Silent, // stdout carries JSON-RPC, keep GORM quiet
	})
	if err != nil {
		log.Printf("Warning: annotation store unavailable: %v", err)
		db = nil
	} else {
		defer database.Close(db)
	}

	srv, err := server.New(cfg, db)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := srv.ServeStdio(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// connectStore opens the configured annotation store or exits
func connectStore(cfg *config.Config) *gorm.DB {
	db, err := database.Connect(&database.Config{
		Type:        cfg.Database.Type,
		SQLitePath:  cfg.Database.SQLitePath,
		PostgresDSN: cfg.Database.PostgresDSN,
		LogLevel:    logger.Silent,
	})
	if err != nil {
		log.Fatalf("Failed to connect to annotation store: %v", err)
	}
	log.Printf("Connected to annotation store: %s", cfg.Database.Type)
	return db
}

// openOutput returns the destination writer and a close function.
// Stdout is left open for the process to manage.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("ELEX_DB_TYPE"); v != "" {
		cfg.Database.Type = v
	}
	if v := os.Getenv("ELEX_DB_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("ELEX_DB_DSN"); v != "" {
		cfg.Database.PostgresDSN = v
	}
	if v := os.Getenv("ELEX_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
}

// applyCLIOverrides applies CLI flag overrides to the config
func applyCLIOverrides(cfg *config.Config, dbType, dbPath, dbDSN, format, naMarker string) {
	if dbType != "" {
		cfg.Database.Type = dbType
	}
	if dbPath != "" {
		cfg.Database.SQLitePath = dbPath
	}
	if dbDSN != "" {
		cfg.Database.PostgresDSN = dbDSN
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if naMarker != "" {
		cfg.Output.NAMarker = naMarker
	}
}
