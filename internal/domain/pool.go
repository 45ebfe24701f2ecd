// Package domain contains the core data types for the pool logbook service.
// It has no persistence code and is imported by every other internal package
// (repo, service, handler).
package domain

import (
	"fmt"
	"math"
	"strings"
)

// Pool is one physical swimming pool and the aggregate root of its logbook.
// ID is assigned by the store on insert and is empty before persistence.
// WaterVolume is stored as supplied; it is not re-derived from the dimensions
// on read or on partial update.
type Pool struct {
	ID              string    `json:"id,omitempty"`
	OwnerName       string    `json:"owner_name"`
	Length          float64   `json:"length"`
	Width           float64   `json:"width"`
	Depth           float64   `json:"depth"`
	Type            string    `json:"type"`
	Notes           string    `json:"notes,omitempty"`
	WaterVolume     float64   `json:"water_volume"`
	NextMaintenance string    `json:"next_maintenance,omitempty"`
	Logbook         []PoolLog `json:"logbook"`
}

// PoolParams carries the caller-supplied fields for a new pool.
// A nil WaterVolume means "compute it from the dimensions".
type PoolParams struct {
	OwnerName       string
	Length          float64
	Width           float64
	Depth           float64
	Type            string
	Notes           string
	WaterVolume     *float64
	NextMaintenance string
	Logbook         []LogParams
}

// NewPool builds a Pool from params and enforces its invariants:
//   - owner_name and type must be non-blank
//   - length, width and depth must be finite and greater than zero
//   - water_volume, when supplied, must be finite and not negative
//   - initial logbook entries get canonical ids, unique within the pool
//
// Every failure wraps ErrValidation.
func NewPool(p PoolParams) (Pool, error) {
	pool := Pool{
		OwnerName:       strings.TrimSpace(p.OwnerName),
		Length:          p.Length,
		Width:           p.Width,
		Depth:           p.Depth,
		Type:            strings.TrimSpace(p.Type),
		Notes:           p.Notes,
		NextMaintenance: p.NextMaintenance,
		Logbook:         make([]PoolLog, 0, len(p.Logbook)),
	}
	if err := pool.Validate(); err != nil {
		return Pool{}, err
	}

	if p.WaterVolume != nil {
		if err := checkVolume(*p.WaterVolume); err != nil {
			return Pool{}, err
		}
		pool.WaterVolume = *p.WaterVolume
	} else {
		pool.WaterVolume = pool.CalculateVolume()
	}

	seen := make(map[string]struct{}, len(p.Logbook))
	for _, lp := range p.Logbook {
		log, err := NewPoolLog(lp)
		if err != nil {
			return Pool{}, err
		}
		if _, dup := seen[log.ID]; dup {
			return Pool{}, fmt.Errorf("%w: duplicate log id %s", ErrValidation, log.ID)
		}
		seen[log.ID] = struct{}{}
		pool.Logbook = append(pool.Logbook, log)
	}
	return pool, nil
}

// Validate checks the required fields and positive dimensions.
func (p Pool) Validate() error {
	if strings.TrimSpace(p.OwnerName) == "" {
		return fmt.Errorf("%w: owner_name is required", ErrValidation)
	}
	if strings.TrimSpace(p.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"length", p.Length},
		{"width", p.Width},
		{"depth", p.Depth},
	} {
		if err := checkDimension(d.name, d.value); err != nil {
			return err
		}
	}
	return nil
}

// CalculateVolume returns length * width * depth in cubic meters.
// It does not touch WaterVolume.
func (p Pool) CalculateVolume() float64 {
	return p.Length * p.Width * p.Depth
}

// LogMaintenance appends log to the in-memory logbook. The caller persists.
func (p *Pool) LogMaintenance(log PoolLog) {
	p.Logbook = append(p.Logbook, log)
}

// ScheduleMaintenance sets the next maintenance date in memory.
func (p *Pool) ScheduleMaintenance(date string) {
	p.NextMaintenance = date
}

// FindLog returns the first logbook entry whose id equals id.
func (p Pool) FindLog(id string) (PoolLog, bool) {
	for _, l := range p.Logbook {
		if l.ID == id {
			return l, true
		}
	}
	return PoolLog{}, false
}

func checkDimension(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a positive number", ErrValidation, name)
	}
	return nil
}

func checkVolume(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: water_volume must not be negative", ErrValidation)
	}
	return nil
}
