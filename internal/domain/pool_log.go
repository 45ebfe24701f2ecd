package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// PoolLog is one maintenance record embedded in a Pool's logbook.
// It has no storage location of its own; ID is unique only among its siblings.
// Date is kept as the caller wrote it and is never parsed.
type PoolLog struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	PHLevel       float64 `json:"pH_level"`
	ChlorineLevel float64 `json:"chlorine_level"`
	Notes         string  `json:"notes"`
}

// LogParams carries the caller-supplied fields for a logbook entry.
// An empty ID means "generate one".
type LogParams struct {
	ID            string
	Date          string
	PHLevel       float64
	ChlorineLevel float64
	Notes         string
}

// NewPoolLog builds a PoolLog, generating a UUID when none is supplied and
// canonicalizing a supplied one. Ids that are not UUIDs are rejected so every
// stored id has the same textual form.
func NewPoolLog(p LogParams) (PoolLog, error) {
	id := uuid.NewString()
	if strings.TrimSpace(p.ID) != "" {
		parsed, err := uuid.Parse(strings.TrimSpace(p.ID))
		if err != nil {
			return PoolLog{}, fmt.Errorf("%w: log id must be a UUID", ErrValidation)
		}
		id = parsed.String()
	}
	if strings.TrimSpace(p.Date) == "" {
		return PoolLog{}, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if math.IsNaN(p.PHLevel) || math.IsInf(p.PHLevel, 0) {
		return PoolLog{}, fmt.Errorf("%w: pH_level must be a number", ErrValidation)
	}
	if math.IsNaN(p.ChlorineLevel) || math.IsInf(p.ChlorineLevel, 0) {
		return PoolLog{}, fmt.Errorf("%w: chlorine_level must be a number", ErrValidation)
	}
	return PoolLog{
		ID:            id,
		Date:          p.Date,
		PHLevel:       p.PHLevel,
		ChlorineLevel: p.ChlorineLevel,
		Notes:         p.Notes,
	}, nil
}

// CanonicalLogID returns the canonical text form of a log id taken from a
// request path. UUIDs in any accepted spelling collapse to lowercase hyphenated
// form; anything else is returned trimmed and will simply not match.
func CanonicalLogID(id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}
