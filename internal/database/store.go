// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package database

import (
	"fmt"
	"path/filepath"

	"github.com/nicolas-werner/elex/internal/eaf"
	"github.com/nicolas-werner/elex/internal/extract"
	"gorm.io/gorm"
)

// SaveExtraction persists one file's extracted records. Re-extracting
// the same path replaces the previous rows inside a single transaction.
func SaveExtraction(db *gorm.DB, path string, doc *eaf.Document, records []extract.Record, distributed bool) (*ElexFile, error) {
	file := &ElexFile{
		Path:        path,
		Name:        filepath.Base(path),
		Annotations: len(records),
		Distributed: distributed,
	}
	if doc != nil {
		file.Author = doc.Author
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing ElexFile
		err := tx.Where("path = ?", path).First(&existing).Error
		switch {
		case err == nil:
			// Replace previous extraction of the same file
			if err := tx.Where("file_id = ?", existing.ID).Delete(&ElexAnnotation{}).Error; err != nil {
				return fmt.Errorf("failed to delete previous annotations: %w", err)
			}
			file.ID = existing.ID
			file.CreatedAt = existing.CreatedAt
			if err := tx.Save(file).Error; err != nil {
				return fmt.Errorf("failed to update file record: %w", err)
			}
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(file).Error; err != nil {
				return fmt.Errorf("failed to create file record: %w", err)
			}
		default:
			return fmt.Errorf("failed to look up file record: %w", err)
		}

		rows := make([]ElexAnnotation, len(records))
		for i := range records {
			rows[i] = annotationRow(file.ID, i, &records[i])
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to create annotation rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return file, nil
}

// annotationRow converts an extracted record into its stored form
func annotationRow(fileID uint, seq int, rec *extract.Record) ElexAnnotation {
	return ElexAnnotation{
		FileID: fileID,
		Seq:    seq,

		TierID:         rec.TierID,
		LinguisticType: rec.LinguisticType,
		ParentTier:     rec.ParentTier,
		Locale:         rec.Locale,
		Participant:    rec.Participant,
		Annotator:      rec.Annotator,

		AnnotationID:       rec.AnnotationID,
		AnnotationRef:      rec.AnnotationRef,
		PreviousAnnotation: rec.PreviousAnnotation,

		TimeSlotRef1: rec.TimeSlotRef1,
		TimeSlotRef2: rec.TimeSlotRef2,
		TimeStart:    rec.TimeStart,
		TimeEnd:      rec.TimeEnd,
		Duration:     rec.Duration,

		Value: rec.Value,
		Index: rec.Index,
	}
}

// ListFiles returns all stored extractions, most recently updated first
func ListFiles(db *gorm.DB) ([]ElexFile, error) {
	var files []ElexFile
	if err := db.Order("updated_at DESC").Find(&files).Error; err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// FindFile looks up a stored extraction by path
func FindFile(db *gorm.DB, path string) (*ElexFile, error) {
	var file ElexFile
	if err := db.Where("path = ?", path).First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// Annotations returns a file's stored records in traversal order,
// optionally filtered by tier
func Annotations(db *gorm.DB, fileID uint, tierID string, limit int) ([]ElexAnnotation, error) {
	query := db.Where("file_id = ?", fileID).Order("seq ASC")
	if tierID != "" {
		query = query.Where("tier_id = ?", tierID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []ElexAnnotation
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query annotations: %w", err)
	}
	return rows, nil
}
