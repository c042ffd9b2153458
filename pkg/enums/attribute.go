package enums

import "fmt"

// AttributeControlType describes how a product attribute is presented and
// whether selections map to concrete attribute values.
type AttributeControlType string

const (
	AttributeControlTypeDropdown      AttributeControlType = "dropdown"
	AttributeControlTypeRadioList     AttributeControlType = "radio_list"
	AttributeControlTypeCheckboxes    AttributeControlType = "checkboxes"
	AttributeControlTypeTextBox       AttributeControlType = "text_box"
	AttributeControlTypeMultilineText AttributeControlType = "multiline_text"
	AttributeControlTypeDatePicker    AttributeControlType = "date_picker"
	AttributeControlTypeFileUpload    AttributeControlType = "file_upload"
)

var validAttributeControlTypes = []AttributeControlType{
	AttributeControlTypeDropdown,
	AttributeControlTypeRadioList,
	AttributeControlTypeCheckboxes,
	AttributeControlTypeTextBox,
	AttributeControlTypeMultilineText,
	AttributeControlTypeDatePicker,
	AttributeControlTypeFileUpload,
}

// String implements fmt.Stringer.
func (t AttributeControlType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known AttributeControlType.
func (t AttributeControlType) IsValid() bool {
	for _, candidate := range validAttributeControlTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// HasValues reports whether selections of this control type reference
// configured attribute values. Free-text, date and upload controls carry no
// values and therefore never contribute price adjustments.
func (t AttributeControlType) HasValues() bool {
	switch t {
	case AttributeControlTypeTextBox, AttributeControlTypeMultilineText,
		AttributeControlTypeDatePicker, AttributeControlTypeFileUpload:
		return false
	}
	return true
}

// ParseAttributeControlType converts raw input into an AttributeControlType.
func ParseAttributeControlType(value string) (AttributeControlType, error) {
	for _, candidate := range validAttributeControlTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid attribute control type %q", value)
}

// AdjustmentKind distinguishes fixed-amount from percentage price adjustments
// on attribute values.
type AdjustmentKind string

const (
	AdjustmentKindFixed      AdjustmentKind = "fixed_amount"
	AdjustmentKindPercentage AdjustmentKind = "percentage"
)

var validAdjustmentKinds = []AdjustmentKind{
	AdjustmentKindFixed,
	AdjustmentKindPercentage,
}

// String implements fmt.Stringer.
func (k AdjustmentKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known AdjustmentKind.
func (k AdjustmentKind) IsValid() bool {
	for _, candidate := range validAdjustmentKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseAdjustmentKind converts raw input into an AdjustmentKind.
func ParseAdjustmentKind(value string) (AdjustmentKind, error) {
	for _, candidate := range validAdjustmentKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid adjustment kind %q", value)
}
