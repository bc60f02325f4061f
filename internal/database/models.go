// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package database

import "time"

// ElexFile represents one extracted .eaf file
type ElexFile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Path        string    `gorm:"uniqueIndex;not null" json:"path"`
	Name        string    `gorm:"not null" json:"name"`
	Author      string    `json:"author"`
	Annotations int       `json:"annotations"`
	Distributed bool      `json:"distributed"` // extracted with duration distribution enabled
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for ElexFile
func (ElexFile) TableName() string {
	return "elex_files"
}

// ElexAnnotation represents one extracted annotation record. Nullable
// columns mirror the unknown sentinels of the extraction output.
type ElexAnnotation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	FileID uint `gorm:"index;not null" json:"file_id"`

	// Seq preserves document traversal order within a file
	Seq int `gorm:"not null" json:"seq"`

	TierID         string  `gorm:"index;not null" json:"tier_id"`
	LinguisticType string  `json:"linguistic_type"`
	ParentTier     *string `json:"parent_tier"`
	Locale         *string `json:"locale"`
	Participant    *string `json:"participant"`
	Annotator      *string `json:"annotator"`

	AnnotationID       string  `gorm:"index;not null" json:"annotation_id"`
	AnnotationRef      *string `gorm:"index" json:"annotation_ref"`
	PreviousAnnotation *string `json:"previous_annotation"`

	TimeSlotRef1 *string  `json:"time_slot_ref1"`
	TimeSlotRef2 *string  `json:"time_slot_ref2"`
	TimeStart    *float64 `json:"time_start"`
	TimeEnd      *float64 `json:"time_end"`
	Duration     *float64 `json:"duration"`

	Value string `gorm:"type:text" json:"value"`
	Index *int   `gorm:"column:ann_index" json:"index"`

	CreatedAt time.Time `json:"created_at"`

	// Foreign key relationship
	File ElexFile `gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for ElexAnnotation
func (ElexAnnotation) TableName() string {
	return "elex_annotations"
}
