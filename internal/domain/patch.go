package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// PoolPatch is a partial update of a pool's scalar fields. A nil pointer
// leaves the stored value untouched. The logbook and the id are not patchable;
// logbook changes go through the logbook operations.
type PoolPatch struct {
	OwnerName       *string
	Length          *float64
	Width           *float64
	Depth           *float64
	Type            *string
	Notes           *string
	WaterVolume     *float64
	NextMaintenance *string
}

// PatchField is one field/value pair of a PoolPatch, named as stored.
type PatchField struct {
	Name  string
	Value any
}

// Document field names, shared by every store backend.
const (
	FieldOwnerName       = "owner_name"
	FieldLength          = "length"
	FieldWidth           = "width"
	FieldDepth           = "depth"
	FieldType            = "type"
	FieldNotes           = "notes"
	FieldWaterVolume     = "water_volume"
	FieldNextMaintenance = "next_maintenance"
	FieldLogbook         = "logbook"
)

// ParsePoolPatch decodes an arbitrary JSON object into a PoolPatch.
// Unknown field names (including id and logbook) and values of the wrong type
// are rejected with ErrValidation. A JSON null clears notes and
// next_maintenance and is rejected for every other field.
func ParsePoolPatch(fields map[string]json.RawMessage) (PoolPatch, error) {
	var p PoolPatch

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw := fields[name]
		var err error
		switch name {
		case FieldOwnerName:
			p.OwnerName, err = decodeString(name, raw, false)
		case FieldType:
			p.Type, err = decodeString(name, raw, false)
		case FieldNotes:
			p.Notes, err = decodeString(name, raw, true)
		case FieldNextMaintenance:
			p.NextMaintenance, err = decodeString(name, raw, true)
		case FieldLength:
			p.Length, err = decodeNumber(name, raw)
		case FieldWidth:
			p.Width, err = decodeNumber(name, raw)
		case FieldDepth:
			p.Depth, err = decodeNumber(name, raw)
		case FieldWaterVolume:
			p.WaterVolume, err = decodeNumber(name, raw)
		default:
			return PoolPatch{}, fmt.Errorf("%w: unknown field %q", ErrValidation, name)
		}
		if err != nil {
			return PoolPatch{}, err
		}
	}
	return p, nil
}

// IsEmpty reports whether the patch changes nothing.
func (p PoolPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Validate applies the same rules as NewPool to the fields being set.
func (p PoolPatch) Validate() error {
	if p.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if p.OwnerName != nil && strings.TrimSpace(*p.OwnerName) == "" {
		return fmt.Errorf("%w: owner_name is required", ErrValidation)
	}
	if p.Type != nil && strings.TrimSpace(*p.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	for _, d := range []struct {
		name  string
		value *float64
	}{
		{FieldLength, p.Length},
		{FieldWidth, p.Width},
		{FieldDepth, p.Depth},
	} {
		if d.value == nil {
			continue
		}
		if err := checkDimension(d.name, *d.value); err != nil {
			return err
		}
	}
	if p.WaterVolume != nil {
		if err := checkVolume(*p.WaterVolume); err != nil {
			return err
		}
	}
	return nil
}

// Fields returns the set fields in a fixed order, keyed by document field name.
func (p PoolPatch) Fields() []PatchField {
	var out []PatchField
	if p.OwnerName != nil {
		out = append(out, PatchField{FieldOwnerName, strings.TrimSpace(*p.OwnerName)})
	}
	if p.Length != nil {
		out = append(out, PatchField{FieldLength, *p.Length})
	}
	if p.Width != nil {
		out = append(out, PatchField{FieldWidth, *p.Width})
	}
	if p.Depth != nil {
		out = append(out, PatchField{FieldDepth, *p.Depth})
	}
	if p.Type != nil {
		out = append(out, PatchField{FieldType, strings.TrimSpace(*p.Type)})
	}
	if p.Notes != nil {
		out = append(out, PatchField{FieldNotes, *p.Notes})
	}
	if p.WaterVolume != nil {
		out = append(out, PatchField{FieldWaterVolume, *p.WaterVolume})
	}
	if p.NextMaintenance != nil {
		out = append(out, PatchField{FieldNextMaintenance, *p.NextMaintenance})
	}
	return out
}

// Apply copies the set fields onto pool and reports whether any value changed.
func (p PoolPatch) Apply(pool *Pool) bool {
	changed := false
	setString := func(dst *string, v *string, trim bool) {
		if v == nil {
			return
		}
		nv := *v
		if trim {
			nv = strings.TrimSpace(nv)
		}
		if *dst != nv {
			*dst = nv
			changed = true
		}
	}
	setFloat := func(dst *float64, v *float64) {
		if v != nil && *dst != *v {
			*dst = *v
			changed = true
		}
	}

	setString(&pool.OwnerName, p.OwnerName, true)
	setFloat(&pool.Length, p.Length)
	setFloat(&pool.Width, p.Width)
	setFloat(&pool.Depth, p.Depth)
	setString(&pool.Type, p.Type, true)
	setString(&pool.Notes, p.Notes, false)
	setFloat(&pool.WaterVolume, p.WaterVolume)
	setString(&pool.NextMaintenance, p.NextMaintenance, false)
	return changed
}

func decodeString(name string, raw json.RawMessage, nullable bool) (*string, error) {
	if isNull(raw) {
		if !nullable {
			return nil, fmt.Errorf("%w: %s must not be null", ErrValidation, name)
		}
		empty := ""
		return &empty, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %s must be a string", ErrValidation, name)
	}
	return &s, nil
}

func decodeNumber(name string, raw json.RawMessage) (*float64, error) {
	if isNull(raw) {
		return nil, fmt.Errorf("%w: %s must not be null", ErrValidation, name)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", ErrValidation, name)
	}
	return &f, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
