// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nicolas-werner/elex/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRecords() []extract.Record {
	ts1 := "ts1"
	ts2 := "ts2"
	start := 1000.0
	end := 1500.0
	dur := 500.0
	idx := 1
	parent := "utterance"
	ref := "ann1"

	return []extract.Record{
		{
			TierID:         "utterance",
			LinguisticType: "default-lt",
			AnnotationID:   "ann1",
			TimeSlotRef1:   &ts1,
			TimeSlotRef2:   &ts2,
			TimeStart:      &start,
			TimeEnd:        &end,
			Duration:       &dur,
			Value:          "hello, world",
			Index:          &idx,
		},
		{
			TierID:         "gloss",
			LinguisticType: "symbolic",
			ParentTier:     &parent,
			AnnotationID:   "x7",
			AnnotationRef:  &ref,
			Value:          "greeting",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, "")
	require.NoError(t, w.Write(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 records

	assert.Equal(t, Columns, rows[0])

	first := rows[1]
	assert.Equal(t, "utterance", first[0])
	assert.Equal(t, "NA", first[2]) // no parent tier
	assert.Equal(t, "ann1", first[6])
	assert.Equal(t, "1000", first[11])
	assert.Equal(t, "500", first[13])
	assert.Equal(t, "hello, world", first[14]) // comma survives quoting
	assert.Equal(t, "1", first[15])

	second := rows[2]
	assert.Equal(t, "gloss", second[0])
	assert.Equal(t, "utterance", second[2])
	assert.Equal(t, "ann1", second[7])
	assert.Equal(t, "NA", second[13]) // unknown duration
	assert.Equal(t, "NA", second[15]) // id does not match the ann<digits> shape
}

func TestWriteCSVCustomNAMarker(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, "?")
	require.NoError(t, w.Write(&buf, sampleRecords()))

	assert.Contains(t, buf.String(), "?")
	assert.NotContains(t, buf.String(), "NA")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, "")
	require.NoError(t, w.Write(&buf, sampleRecords()))

	var decoded []extract.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, sampleRecords(), decoded)

	// Unknowns serialize as null, not as a marker string
	assert.Contains(t, buf.String(), `"duration": null`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, "")
	require.NoError(t, w.Write(&buf, sampleRecords()))

	var decoded []extract.Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "utterance", decoded[0].TierID)
	require.NotNil(t, decoded[0].Duration)
	assert.Equal(t, 500.0, *decoded[0].Duration)
	assert.Nil(t, decoded[1].Duration)
}

func TestWriteEmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, "")
	require.NoError(t, w.Write(&buf, nil))

	// Header only
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), "")
	err := w.Write(&buf, sampleRecords())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat(FormatCSV))
	assert.True(t, IsValidFormat(FormatJSON))
	assert.True(t, IsValidFormat(FormatYAML))
	assert.False(t, IsValidFormat(Format("tsv")))
}
