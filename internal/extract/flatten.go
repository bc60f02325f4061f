// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package extract

import (
	"errors"
	"fmt"

	"github.com/nicolas-werner/elex/internal/eaf"
)

// ErrNilDocument is returned when Extract is called without a parsed document
var ErrNilDocument = errors.New("nil ELAN document")

// Options control the extraction pipeline
type Options struct {
	// DistributeDuration divides each parent annotation's duration
	// evenly among its same-tier children after flattening.
	DistributeDuration bool
}

// Extract flattens every annotation node in the document into one
// record, in document traversal order: tiers in order, then nodes
// within each tier. Consumers rely on that order, for example when a
// previous-annotation pointer refers to a prior row.
func Extract(doc *eaf.Document, opts Options) ([]Record, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	mappings := BuildMappings(doc)

	records := make([]Record, 0, doc.AnnotationCount())
	for ti := range doc.Tiers {
		tier := &doc.Tiers[ti]
		for ai := range tier.Annotations {
			rec, err := flatten(tier, &tier.Annotations[ai], mappings)
			if err != nil {
				return nil, fmt.Errorf("failed to flatten annotation %q in tier %q: %w",
					tier.Annotations[ai].AnnotationID(), tier.ID, err)
			}
			records = append(records, rec)
		}
	}

	if opts.DistributeDuration {
		DistributeDuration(records)
	}

	return records, nil
}

// flatten assembles one record from an annotation node and its tier context
func flatten(tier *eaf.Tier, ann *eaf.Annotation, mappings *Mappings) (Record, error) {
	id := ann.AnnotationID()

	pair, err := mappings.Resolve(id)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		TierID:         tier.ID,
		LinguisticType: tier.LinguisticTypeRef,
		ParentTier:     optional(tier.ParentRef),
		Locale:         optional(tier.DefaultLocale),
		Participant:    optional(tier.Participant),
		Annotator:      optional(tier.Annotator),

		AnnotationID: id,
		TimeSlotRef1: optional(pair.Ref1),
		TimeSlotRef2: optional(pair.Ref2),
		Duration:     mappings.Duration(pair),
		Value:        ann.Value(),
		Index:        annotationIndex(id),
	}

	if ann.Ref != nil {
		rec.AnnotationRef = optional(ann.Ref.AnnotationRef)
		rec.PreviousAnnotation = optional(ann.Ref.PreviousAnnotation)
	}

	if v, ok := mappings.TimeValue(pair.Ref1); ok {
		rec.TimeStart = &v
	}
	if v, ok := mappings.TimeValue(pair.Ref2); ok {
		rec.TimeEnd = &v
	}

	return rec, nil
}
