// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package extract

// groupKey identifies the sibling group a child record belongs to:
// same parent annotation, same tier.
type groupKey struct {
	annotationRef string
	tierID        string
}

// DistributeDuration replaces each child record's duration with its
// share of the parent's span, assuming siblings within one tier split
// the parent's aligned window evenly. This is an approximation for
// children that lack independent alignment, not a measured value.
// Records without a parent annotation reference keep their duration.
// The pre-distribution values are not retained.
func DistributeDuration(records []Record) {
	counts := make(map[groupKey]int)
	for i := range records {
		if records[i].AnnotationRef == nil {
			continue
		}
		counts[groupKey{*records[i].AnnotationRef, records[i].TierID}]++
	}

	for i := range records {
		rec := &records[i]
		if rec.AnnotationRef == nil || rec.Duration == nil {
			continue
		}
		n := counts[groupKey{*rec.AnnotationRef, rec.TierID}]
		share := *rec.Duration / float64(n)
		rec.Duration = &share
	}
}
