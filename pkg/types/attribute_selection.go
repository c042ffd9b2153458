package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SelectedAttribute is one customer choice against a product attribute
// mapping. ValueID references a configured attribute value for list controls;
// CustomText carries the raw entry for free-text, date and upload controls.
type SelectedAttribute struct {
	MappingID  uuid.UUID  `json:"mapping_id"`
	ValueID    *uuid.UUID `json:"value_id,omitempty"`
	CustomText *string    `json:"custom_text,omitempty"`
}

// AttributeSelection is the full set of choices for a cart line, persisted as
// JSONB.
type AttributeSelection []SelectedAttribute

// Value serializes the selection to JSON.
func (a AttributeSelection) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Scan decodes JSONB into the selection slice.
func (a *AttributeSelection) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded AttributeSelection
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*a = decoded
	return nil
}

// ValueIDs returns the referenced attribute value ids, skipping free-text
// entries.
func (a AttributeSelection) ValueIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a))
	for _, sel := range a {
		if sel.ValueID != nil {
			ids = append(ids, *sel.ValueID)
		}
	}
	return ids
}

// ValueSet returns the referenced attribute value ids as a set.
func (a AttributeSelection) ValueSet() map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(a))
	for _, sel := range a {
		if sel.ValueID != nil {
			set[*sel.ValueID] = struct{}{}
		}
	}
	return set
}

// SameValues reports whether both selections reference exactly the same set of
// attribute value ids. Free-text entries are ignored; they never participate
// in combination matching.
func (a AttributeSelection) SameValues(other AttributeSelection) bool {
	mine := a.ValueSet()
	theirs := other.ValueSet()
	if len(mine) != len(theirs) {
		return false
	}
	for id := range mine {
		if _, ok := theirs[id]; !ok {
			return false
		}
	}
	return true
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}
