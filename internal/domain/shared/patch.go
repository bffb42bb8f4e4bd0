package shared

import (
	"bytes"
	"encoding/json"
)

// PatchState tells what an update request asks for a single field
type PatchState uint8

const (
	// PatchUnchanged leaves the stored value alone (field absent)
	PatchUnchanged PatchState = iota
	// PatchSet replaces the stored value
	PatchSet
	// PatchClear removes the stored value (explicit JSON null)
	PatchClear
)

// Patch is a tri-state optional field for partial updates.
// Absent in JSON means Unchanged, null means Clear, any value means Set.
type Patch[T any] struct {
	state PatchState
	value T
}

// Set returns a patch that sets v
func Set[T any](v T) Patch[T] {
	return Patch[T]{state: PatchSet, value: v}
}

// Clear returns a patch that clears the field
func Clear[T any]() Patch[T] {
	return Patch[T]{state: PatchClear}
}

// State returns the patch state
func (p Patch[T]) State() PatchState { return p.state }

// IsSet reports whether a new value was provided
func (p Patch[T]) IsSet() bool { return p.state == PatchSet }

// IsClear reports whether the field must be cleared
func (p Patch[T]) IsClear() bool { return p.state == PatchClear }

// IsUnchanged reports whether the field was absent
func (p Patch[T]) IsUnchanged() bool { return p.state == PatchUnchanged }

// Value returns the value and true when the patch is Set
func (p Patch[T]) Value() (T, bool) {
	return p.value, p.state == PatchSet
}

// Apply writes the patch into an optional field
func (p Patch[T]) Apply(target **T) {
	switch p.state {
	case PatchSet:
		v := p.value
		*target = &v
	case PatchClear:
		*target = nil
	}
}

// UnmarshalJSON is only invoked when the key is present
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		p.state, p.value = PatchClear, zero
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.state, p.value = PatchSet, v
	return nil
}

// MarshalJSON renders Set as the value and anything else as null
func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if p.state != PatchSet {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}
