package enums

import "fmt"

// RecurringCyclePeriod is the unit a rental billing cycle is measured in.
type RecurringCyclePeriod string

const (
	RecurringCyclePeriodDays   RecurringCyclePeriod = "days"
	RecurringCyclePeriodWeeks  RecurringCyclePeriod = "weeks"
	RecurringCyclePeriodMonths RecurringCyclePeriod = "months"
	RecurringCyclePeriodYears  RecurringCyclePeriod = "years"
)

var validRecurringCyclePeriods = []RecurringCyclePeriod{
	RecurringCyclePeriodDays,
	RecurringCyclePeriodWeeks,
	RecurringCyclePeriodMonths,
	RecurringCyclePeriodYears,
}

// String implements fmt.Stringer.
func (p RecurringCyclePeriod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known RecurringCyclePeriod.
func (p RecurringCyclePeriod) IsValid() bool {
	for _, candidate := range validRecurringCyclePeriods {
		if candidate == p {
			return true
		}
	}
	return false
}

// DaysPerUnit returns the calendar days one cycle unit spans. Months and years
// use the commercial 30/365 day conventions.
func (p RecurringCyclePeriod) DaysPerUnit() int {
	switch p {
	case RecurringCyclePeriodWeeks:
		return 7
	case RecurringCyclePeriodMonths:
		return 30
	case RecurringCyclePeriodYears:
		return 365
	}
	return 1
}

// ParseRecurringCyclePeriod converts raw input into a RecurringCyclePeriod.
func ParseRecurringCyclePeriod(value string) (RecurringCyclePeriod, error) {
	for _, candidate := range validRecurringCyclePeriods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid recurring cycle period %q", value)
}
