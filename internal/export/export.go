// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package export

import (
	"fmt"
	"io"

	"github.com/nicolas-werner/elex/internal/extract"
)

// Format identifies a supported output serialization
type Format string

// Supported output formats
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultNAMarker is what unknown values render as in CSV output;
// downstream statistical tooling reads it as a missing value.
const DefaultNAMarker = "NA"

// ValidFormats returns all supported output formats
func ValidFormats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatYAML}
}

// IsValidFormat checks if a format is supported
func IsValidFormat(format Format) bool {
	for _, valid := range ValidFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// Writer serializes extracted records in a configured format
type Writer struct {
	Format   Format
	NAMarker string
}

// NewWriter creates a writer for the given format. An empty naMarker
// falls back to DefaultNAMarker.
func NewWriter(format Format, naMarker string) *Writer {
	if naMarker == "" {
		naMarker = DefaultNAMarker
	}
	return &Writer{Format: format, NAMarker: naMarker}
}

// Write serializes the records to out
func (w *Writer) Write(out io.Writer, records []extract.Record) error {
	switch w.Format {
	case FormatCSV:
		return w.writeCSV(out, records)
	case FormatJSON:
		return writeJSON(out, records)
	case FormatYAML:
		return writeYAML(out, records)
	default:
		return fmt.Errorf("unsupported output format: %s", w.Format)
	}
}
