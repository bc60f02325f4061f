// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package extract

import (
	"regexp"
	"strconv"
)

// Record is one flat row per annotation node. Pointer fields use nil as
// the unknown sentinel; missing attributes and unresolvable chains
// degrade to nil rather than failing the extraction.
type Record struct {
	TierID         string  `json:"tier_id" yaml:"tier_id"`
	LinguisticType string  `json:"linguistic_type" yaml:"linguistic_type"`
	ParentTier     *string `json:"parent_tier" yaml:"parent_tier"`
	Locale         *string `json:"locale" yaml:"locale"`
	Participant    *string `json:"participant" yaml:"participant"`
	Annotator      *string `json:"annotator" yaml:"annotator"`

	AnnotationID       string  `json:"annotation_id" yaml:"annotation_id"`
	AnnotationRef      *string `json:"annotation_ref" yaml:"annotation_ref"`
	PreviousAnnotation *string `json:"previous_annotation" yaml:"previous_annotation"`

	TimeSlotRef1 *string  `json:"time_slot_ref1" yaml:"time_slot_ref1"`
	TimeSlotRef2 *string  `json:"time_slot_ref2" yaml:"time_slot_ref2"`
	TimeStart    *float64 `json:"time_start" yaml:"time_start"`
	TimeEnd      *float64 `json:"time_end" yaml:"time_end"`
	Duration     *float64 `json:"duration" yaml:"duration"`

	Value string `json:"value" yaml:"value"`

	// Index is the numeric part of ids shaped like "ann42". Ids with a
	// different shape get nil, so consumers can sort or join on it
	// without assuming every id follows the convention.
	Index *int `json:"index" yaml:"index"`
}

var annotationIDPattern = regexp.MustCompile(`^ann([0-9]+)$`)

// annotationIndex derives the numeric index from a conventional
// annotation id, or nil when the id does not match.
func annotationIndex(id string) *int {
	match := annotationIDPattern.FindStringSubmatch(id)
	if match == nil {
		return nil
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &n
}

// optional converts an attribute value to a pointer, treating the
// empty string as absent.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
