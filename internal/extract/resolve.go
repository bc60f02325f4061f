// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package extract

import (
	"errors"
	"fmt"
	"math"
)

// ErrCycle is returned when a reference chain revisits an annotation id
var ErrCycle = errors.New("annotation reference cycle detected")

// Resolve follows a reference chain until it reaches a directly
// time-aligned annotation and returns that annotation's slot pair.
// Ids present in neither mapping resolve to an empty pair. The walk is
// iterative with a visited set, so a cyclic chain is reported instead
// of growing the stack without bound.
func (m *Mappings) Resolve(annotationID string) (TimeSlotPair, error) {
	visited := make(map[string]bool)

	id := annotationID
	for {
		if pair, ok := m.TimeSlotRefs[id]; ok {
			return pair, nil
		}
		next, ok := m.AnnotationRefs[id]
		if !ok {
			// Chain ends without a time-aligned ancestor.
			return TimeSlotPair{}, nil
		}
		if visited[id] {
			return TimeSlotPair{}, fmt.Errorf("%w: %q", ErrCycle, annotationID)
		}
		visited[id] = true
		id = next
	}
}

// Duration computes the absolute difference between the two resolved
// time values. Some files store the slots in reversed temporal order;
// the absolute value tolerates that. If either value is unknown the
// result is nil.
func (m *Mappings) Duration(pair TimeSlotPair) *float64 {
	v1, ok1 := m.TimeSlotValues[pair.Ref1]
	v2, ok2 := m.TimeSlotValues[pair.Ref2]
	if !ok1 || !ok2 {
		return nil
	}
	d := math.Abs(v2 - v1)
	return &d
}
