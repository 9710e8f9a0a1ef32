package schema

import (
	"math"
	"strconv"
	"strings"
	"time"

	"podcast-summarizer/internal/domain/entities"
	apperrors "podcast-summarizer/pkg/errors"
	"podcast-summarizer/pkg/helper"
)

// MediaCandidate is a record as assembled from an upload, before any type coercion.
// DurationSeconds holds the raw form value; empty means absent.
type MediaCandidate struct {
	ID              string
	Title           string
	StorageKey      string
	URL             string
	Format          entities.MediaFormat
	DurationSeconds string
	Description     string
	CreatedAt       time.Time
}

// ValidateMedia coerces a candidate into a typed record and validates it.
// On failure the returned error is a *ValidationError.
func (v *Validator) ValidateMedia(c MediaCandidate) (entities.MediaRecord, error) {
	var problems []apperrors.Violation

	rec := entities.MediaRecord{
		ID:         c.ID,
		Title:      c.Title,
		StorageKey: c.StorageKey,
		URL:        c.URL,
		Format:     c.Format,
		CreatedAt:  c.CreatedAt,

		Description: helper.OptionalString(c.Description),
	}

	if raw := strings.TrimSpace(c.DurationSeconds); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			problems = append(problems, apperrors.Violation{Path: "durationSeconds", Message: "must be a number"})
		case math.IsNaN(d) || math.IsInf(d, 0):
			problems = append(problems, apperrors.Violation{Path: "durationSeconds", Message: "must be a finite number"})
		default:
			rec.DurationSeconds = &d
		}
	}

	out, err := v.ValidateRecord(rec)
	if err != nil {
		problems = append(problems, err.(*ValidationError).Violations...)
	}
	if len(problems) > 0 {
		return entities.MediaRecord{}, &ValidationError{Violations: problems}
	}
	return out, nil
}

// ValidateRecord checks an already typed record. Validating its own output again
// yields the same record.
func (v *Validator) ValidateRecord(rec entities.MediaRecord) (entities.MediaRecord, error) {
	if problems := v.violations(rec); len(problems) > 0 {
		return entities.MediaRecord{}, &ValidationError{Violations: problems}
	}

	out := rec
	out.CreatedAt = rec.CreatedAt.UTC()
	if rec.DurationSeconds != nil {
		d := *rec.DurationSeconds
		out.DurationSeconds = &d
	}
	if rec.Description != nil {
		desc := *rec.Description
		out.Description = &desc
	}
	return out, nil
}
