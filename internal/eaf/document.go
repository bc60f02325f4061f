// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package eaf

import "encoding/xml"

// Document represents a parsed ELAN ANNOTATION_DOCUMENT (.eaf file)
type Document struct {
	XMLName xml.Name `xml:"ANNOTATION_DOCUMENT"`
	Author  string   `xml:"AUTHOR,attr"`
	Date    string   `xml:"DATE,attr"`
	Format  string   `xml:"FORMAT,attr"`
	Version string   `xml:"VERSION,attr"`

	Header          *Header          `xml:"HEADER"`
	TimeOrder       TimeOrder        `xml:"TIME_ORDER"`
	Tiers           []Tier           `xml:"TIER"`
	LinguisticTypes []LinguisticType `xml:"LINGUISTIC_TYPE"`
}

// Header holds document-level metadata about the annotated media
type Header struct {
	MediaFile        string            `xml:"MEDIA_FILE,attr"`
	TimeUnits        string            `xml:"TIME_UNITS,attr"`
	MediaDescriptors []MediaDescriptor `xml:"MEDIA_DESCRIPTOR"`
}

// MediaDescriptor points at a media file the annotations are aligned to
type MediaDescriptor struct {
	MediaURL         string `xml:"MEDIA_URL,attr"`
	MimeType         string `xml:"MIME_TYPE,attr"`
	RelativeMediaURL string `xml:"RELATIVE_MEDIA_URL,attr"`
}

// TimeOrder is the ordered list of time slots in the document
type TimeOrder struct {
	TimeSlots []TimeSlot `xml:"TIME_SLOT"`
}

// TimeSlot is a named point in time within the media.
// TimeValue stays a string because the attribute may be absent or
// non-numeric; downstream mapping decides what counts as a usable value.
type TimeSlot struct {
	ID        string `xml:"TIME_SLOT_ID,attr"`
	TimeValue string `xml:"TIME_VALUE,attr"`
}

// Tier is a named track of annotations sharing a linguistic type
type Tier struct {
	ID                string       `xml:"TIER_ID,attr"`
	LinguisticTypeRef string       `xml:"LINGUISTIC_TYPE_REF,attr"`
	ParentRef         string       `xml:"PARENT_REF,attr"`
	DefaultLocale     string       `xml:"DEFAULT_LOCALE,attr"`
	Participant       string       `xml:"PARTICIPANT,attr"`
	Annotator         string       `xml:"ANNOTATOR,attr"`
	Annotations       []Annotation `xml:"ANNOTATION"`
}

// Annotation is the wrapper element around either an alignable or a
// reference annotation. Exactly one of the two fields is non-nil in a
// well-formed document.
type Annotation struct {
	Alignable *AlignableAnnotation `xml:"ALIGNABLE_ANNOTATION"`
	Ref       *RefAnnotation       `xml:"REF_ANNOTATION"`
}

// AlignableAnnotation is directly anchored to two time slots
type AlignableAnnotation struct {
	ID           string `xml:"ANNOTATION_ID,attr"`
	TimeSlotRef1 string `xml:"TIME_SLOT_REF1,attr"`
	TimeSlotRef2 string `xml:"TIME_SLOT_REF2,attr"`
	Value        string `xml:"ANNOTATION_VALUE"`
}

// RefAnnotation is anchored indirectly through another annotation
type RefAnnotation struct {
	ID                 string `xml:"ANNOTATION_ID,attr"`
	AnnotationRef      string `xml:"ANNOTATION_REF,attr"`
	PreviousAnnotation string `xml:"PREVIOUS_ANNOTATION,attr"`
	Value              string `xml:"ANNOTATION_VALUE"`
}

// LinguisticType describes the constraints shared by tiers referencing it
type LinguisticType struct {
	ID              string `xml:"LINGUISTIC_TYPE_ID,attr"`
	TimeAlignable   string `xml:"TIME_ALIGNABLE,attr"`
	Constraints     string `xml:"CONSTRAINTS,attr"`
	GraphicRefs     string `xml:"GRAPHIC_REFERENCES,attr"`
	ControlledVocab string `xml:"CONTROLLED_VOCABULARY_REF,attr"`
}

// AnnotationID returns the annotation id regardless of annotation kind
func (a *Annotation) AnnotationID() string {
	if a.Alignable != nil {
		return a.Alignable.ID
	}
	if a.Ref != nil {
		return a.Ref.ID
	}
	return ""
}

// Value returns the annotation text regardless of annotation kind
func (a *Annotation) Value() string {
	if a.Alignable != nil {
		return a.Alignable.Value
	}
	if a.Ref != nil {
		return a.Ref.Value
	}
	return ""
}

// AnnotationCount returns the number of annotation nodes across all tiers
func (d *Document) AnnotationCount() int {
	count := 0
	for i := range d.Tiers {
		count += len(d.Tiers[i].Annotations)
	}
	return count
}
