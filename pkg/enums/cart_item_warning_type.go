package enums

import "fmt"

// CartItemWarningType enumerates the reasons a quoted cart line carries a
// warning. Warnings never fail the quote; callers surface them alongside the
// line.
type CartItemWarningType string

const (
	CartItemWarningTypeClampedToMinQty CartItemWarningType = "clamped_to_min_qty"
	CartItemWarningTypeClampedToMaxQty CartItemWarningType = "clamped_to_max_qty"
	CartItemWarningTypePriceChanged    CartItemWarningType = "price_changed"
	CartItemWarningTypeNotAvailable    CartItemWarningType = "not_available"
	CartItemWarningTypeStoreMismatch   CartItemWarningType = "store_mismatch"
)

var validCartItemWarningTypes = []CartItemWarningType{
	CartItemWarningTypeClampedToMinQty,
	CartItemWarningTypeClampedToMaxQty,
	CartItemWarningTypePriceChanged,
	CartItemWarningTypeNotAvailable,
	CartItemWarningTypeStoreMismatch,
}

// String implements fmt.Stringer.
func (c CartItemWarningType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CartItemWarningType.
func (c CartItemWarningType) IsValid() bool {
	for _, candidate := range validCartItemWarningTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCartItemWarningType converts raw input into a CartItemWarningType.
func ParseCartItemWarningType(value string) (CartItemWarningType, error) {
	for _, candidate := range validCartItemWarningTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart item warning type %q", value)
}
