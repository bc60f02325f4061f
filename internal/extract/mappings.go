// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package extract

import (
	"strconv"

	"github.com/nicolas-werner/elex/internal/eaf"
)

// TimeSlotPair holds the two time-slot references of an alignable
// annotation. An empty string means the reference is unknown.
type TimeSlotPair struct {
	Ref1 string
	Ref2 string
}

// Mappings are the lookup tables built from one pass over the document.
// Duplicate ids overwrite in document order (last wins); ELAN files
// should not contain duplicates, but when they do the behavior is
// deliberate rather than an error.
type Mappings struct {
	// TimeSlotValues maps time-slot id to its numeric time value.
	// Slots with a missing or non-numeric TIME_VALUE have no entry.
	TimeSlotValues map[string]float64

	// TimeSlotRefs maps alignable annotation ids to their slot pair.
	TimeSlotRefs map[string]TimeSlotPair

	// AnnotationRefs maps reference annotation ids to the id they refer to.
	AnnotationRefs map[string]string
}

// BuildMappings scans the document once and produces the three lookup
// tables used by chain resolution and duration computation.
func BuildMappings(doc *eaf.Document) *Mappings {
	m := &Mappings{
		TimeSlotValues: make(map[string]float64, len(doc.TimeOrder.TimeSlots)),
		TimeSlotRefs:   make(map[string]TimeSlotPair),
		AnnotationRefs: make(map[string]string),
	}

	for _, slot := range doc.TimeOrder.TimeSlots {
		value, err := strconv.ParseFloat(slot.TimeValue, 64)
		if err != nil {
			continue
		}
		m.TimeSlotValues[slot.ID] = value
	}

	for ti := range doc.Tiers {
		for _, ann := range doc.Tiers[ti].Annotations {
			switch {
			case ann.Alignable != nil:
				m.TimeSlotRefs[ann.Alignable.ID] = TimeSlotPair{
					Ref1: ann.Alignable.TimeSlotRef1,
					Ref2: ann.Alignable.TimeSlotRef2,
				}
			case ann.Ref != nil:
				m.AnnotationRefs[ann.Ref.ID] = ann.Ref.AnnotationRef
			}
		}
	}

	return m
}

// TimeValue looks up the numeric value for a time-slot reference
func (m *Mappings) TimeValue(ref string) (float64, bool) {
	value, ok := m.TimeSlotValues[ref]
	return value, ok
}
