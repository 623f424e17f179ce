package nxtypes

import (
	"fmt"
	"strings"
)

// EncapType identifies the tunneling scheme applied to traffic.
type EncapType int32

const (
	// EncapTypeNone means traffic is not encapsulated.
	EncapTypeNone EncapType = 0

	// EncapTypeVXLAN is VXLAN encapsulation.
	EncapTypeVXLAN EncapType = 1

	// EncapTypeMax bounds the valid encapsulations. It is never an encapsulation itself.
	EncapTypeMax EncapType = 2
)

// String returns the short name of the encapsulation.
func (e EncapType) String() string {
	switch e {
	case EncapTypeNone:
		return "NONE"
	case EncapTypeVXLAN:
		return "VXLAN"
	case EncapTypeMax:
		return "MAX"
	default:
		return fmt.Sprintf("EncapType(%d)", int32(e))
	}
}

// SDKName returns the name the SDK headers use for the encapsulation.
func (e EncapType) SDKName() string {
	switch e {
	case EncapTypeNone:
		return "NONE"
	case EncapTypeVXLAN:
		return "VXLAN"
	case EncapTypeMax:
		return "ENCAP_MAX_TYPE"
	default:
		return ""
	}
}

// IsValid reports whether e is a real encapsulation, i.e. below EncapTypeMax.
func (e EncapType) IsValid() bool { return e >= EncapTypeNone && e < EncapTypeMax }

// Int32 returns the numeric value of the encapsulation.
func (e EncapType) Int32() int32 { return int32(e) }

// EncapTypeFromInt32 converts a raw integer into an EncapType.
func EncapTypeFromInt32(i int32) (EncapType, error) {
	e := EncapType(i)
	if !e.IsValid() {
		return EncapTypeMax, newOutOfRangeError("EncapType", i)
	}
	return e, nil
}

// ParseEncapType converts "none" or "vxlan" into an EncapType. Matching is
// case-insensitive.
func ParseEncapType(s string) (EncapType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return EncapTypeNone, nil
	case "VXLAN":
		return EncapTypeVXLAN, nil
	default:
		return EncapTypeMax, newUnknownNameError("EncapType", s)
	}
}

// EncapTypeValues returns every valid encapsulation in numeric order.
func EncapTypeValues() []EncapType { return []EncapType{EncapTypeNone, EncapTypeVXLAN} }
