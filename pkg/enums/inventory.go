package enums

import "fmt"

// InventoryMethod describes how stock is tracked for a product.
type InventoryMethod string

const (
	InventoryMethodNone              InventoryMethod = "none"
	InventoryMethodTrack             InventoryMethod = "track"
	InventoryMethodTrackByAttributes InventoryMethod = "track_by_attributes"
)

var validInventoryMethods = []InventoryMethod{
	InventoryMethodNone,
	InventoryMethodTrack,
	InventoryMethodTrackByAttributes,
}

// String implements fmt.Stringer.
func (m InventoryMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is a known InventoryMethod.
func (m InventoryMethod) IsValid() bool {
	for _, candidate := range validInventoryMethods {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseInventoryMethod converts raw input into an InventoryMethod.
func ParseInventoryMethod(value string) (InventoryMethod, error) {
	for _, candidate := range validInventoryMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid inventory method %q", value)
}
