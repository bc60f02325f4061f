// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nicolas-werner/elex/internal/extract"
)

// Columns is the CSV header, in record field order
var Columns = []string{
	"tier_id",
	"linguistic_type",
	"parent_tier",
	"locale",
	"participant",
	"annotator",
	"annotation_id",
	"annotation_ref",
	"previous_annotation",
	"time_slot_ref1",
	"time_slot_ref2",
	"time_start",
	"time_end",
	"duration",
	"value",
	"index",
}

// writeCSV renders one row per record with unknown values as the NA marker
func (w *Writer) writeCSV(out io.Writer, records []extract.Record) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range records {
		if err := cw.Write(w.csvRow(&records[i])); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (w *Writer) csvRow(rec *extract.Record) []string {
	return []string{
		rec.TierID,
		rec.LinguisticType,
		w.strCell(rec.ParentTier),
		w.strCell(rec.Locale),
		w.strCell(rec.Participant),
		w.strCell(rec.Annotator),
		rec.AnnotationID,
		w.strCell(rec.AnnotationRef),
		w.strCell(rec.PreviousAnnotation),
		w.strCell(rec.TimeSlotRef1),
		w.strCell(rec.TimeSlotRef2),
		w.floatCell(rec.TimeStart),
		w.floatCell(rec.TimeEnd),
		w.floatCell(rec.Duration),
		rec.Value,
		w.intCell(rec.Index),
	}
}

func (w *Writer) strCell(s *string) string {
	if s == nil {
		return w.NAMarker
	}
	return *s
}

func (w *Writer) floatCell(f *float64) string {
	if f == nil {
		return w.NAMarker
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func (w *Writer) intCell(n *int) string {
	if n == nil {
		return w.NAMarker
	}
	return strconv.Itoa(*n)
}
