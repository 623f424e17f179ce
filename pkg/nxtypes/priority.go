package nxtypes

import (
	"fmt"
	"strings"
)

// Priority is the share of CPU an application asks the SDK for, so that one
// application cannot starve the others.
//
// Unlike the other types, priorities start at 1 and have no sentinel.
// PriorityNone means no priority was requested and the default applies; it is
// not a level below PriorityLow.
type Priority int32

const (
	// PriorityLow requests a small share of CPU.
	PriorityLow Priority = 1

	// PriorityMedium requests a moderate share of CPU.
	PriorityMedium Priority = 2

	// PriorityHigh requests a large share of CPU.
	PriorityHigh Priority = 3

	// PriorityNone requests no particular share; the SDK default applies.
	PriorityNone Priority = 4
)

// String returns the short name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityNone:
		return "NONE"
	default:
		return fmt.Sprintf("Priority(%d)", int32(p))
	}
}

// SDKName returns the name the SDK headers use for the priority.
func (p Priority) SDKName() string {
	switch p {
	case PriorityLow:
		return "LOW_PRIO"
	case PriorityMedium:
		return "MED_PRIO"
	case PriorityHigh:
		return "HIGH_PRIO"
	case PriorityNone:
		return "NO_PRIO"
	default:
		return ""
	}
}

// IsValid reports whether p lies within PriorityLow..PriorityNone.
func (p Priority) IsValid() bool { return p >= PriorityLow && p <= PriorityNone }

// Int32 returns the numeric value of the priority.
func (p Priority) Int32() int32 { return int32(p) }

// PriorityFromInt32 converts a raw integer into a Priority. Zero is rejected.
func PriorityFromInt32(i int32) (Priority, error) {
	p := Priority(i)
	if !p.IsValid() {
		return PriorityNone, newOutOfRangeError("Priority", i)
	}
	return p, nil
}

// ParsePriority converts a short name ("high", "med") or SDK name
// ("HIGH_PRIO") into a Priority. Matching is case-insensitive.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW", "LOW_PRIO":
		return PriorityLow, nil
	case "MEDIUM", "MED", "MED_PRIO":
		return PriorityMedium, nil
	case "HIGH", "HIGH_PRIO":
		return PriorityHigh, nil
	case "NONE", "NO_PRIO":
		return PriorityNone, nil
	default:
		return PriorityNone, newUnknownNameError("Priority", s)
	}
}

// PriorityValues returns every priority in numeric order.
func PriorityValues() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityNone}
}
