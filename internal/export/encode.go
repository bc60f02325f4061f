// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nicolas-werner/elex/internal/extract"
	"gopkg.in/yaml.v3"
)

// writeJSON renders the records as an indented JSON array; unknown
// values serialize as null
func writeJSON(out io.Writer, records []extract.Record) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records as json: %w", err)
	}
	return nil
}

// writeYAML renders the records as a YAML sequence; unknown values
// serialize as null
func writeYAML(out io.Writer, records []extract.Record) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records as yaml: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write yaml output: %w", err)
	}
	return nil
}
