package nxtypes

import (
	"fmt"
	"strings"
)

// AddressFamily selects between IPv4 and IPv6 addressing.
type AddressFamily int32

const (
	// AddressFamilyStart is the first address family. It aliases AddressFamilyIPv4
	// and is not a distinct member.
	AddressFamilyStart AddressFamily = 0

	// AddressFamilyIPv4 selects IPv4 addresses.
	AddressFamilyIPv4 AddressFamily = 0

	// AddressFamilyIPv6 selects IPv6 addresses.
	AddressFamilyIPv6 AddressFamily = 1

	// AddressFamilyMax bounds the valid address families. It is never a family itself.
	AddressFamilyMax AddressFamily = 2
)

// String returns the short name of the address family. AddressFamilyStart
// reports as "IPV4".
func (a AddressFamily) String() string {
	switch a {
	case AddressFamilyIPv4:
		return "IPV4"
	case AddressFamilyIPv6:
		return "IPV6"
	case AddressFamilyMax:
		return "MAX"
	default:
		return fmt.Sprintf("AddressFamily(%d)", int32(a))
	}
}

// SDKName returns the name the SDK headers use for the address family.
func (a AddressFamily) SDKName() string {
	switch a {
	case AddressFamilyIPv4:
		return "AF_IPV4"
	case AddressFamilyIPv6:
		return "AF_IPV6"
	case AddressFamilyMax:
		return "MAX_AF"
	default:
		return ""
	}
}

// IsValid reports whether a is a real address family, i.e. below AddressFamilyMax.
func (a AddressFamily) IsValid() bool { return a >= AddressFamilyStart && a < AddressFamilyMax }

// Int32 returns the numeric value of the address family.
func (a AddressFamily) Int32() int32 { return int32(a) }

// AddressFamilyFromInt32 converts a raw integer into an AddressFamily.
func AddressFamilyFromInt32(i int32) (AddressFamily, error) {
	a := AddressFamily(i)
	if !a.IsValid() {
		return AddressFamilyMax, newOutOfRangeError("AddressFamily", i)
	}
	return a, nil
}

// ParseAddressFamily converts a short name ("ipv6") or SDK name ("AF_IPV6")
// into an AddressFamily. "start" and "AF_START" resolve to AddressFamilyIPv4.
func ParseAddressFamily(s string) (AddressFamily, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IPV4", "AF_IPV4", "START", "AF_START":
		return AddressFamilyIPv4, nil
	case "IPV6", "AF_IPV6":
		return AddressFamilyIPv6, nil
	default:
		return AddressFamilyMax, newUnknownNameError("AddressFamily", s)
	}
}

// AddressFamilyValues returns every valid address family in numeric order.
func AddressFamilyValues() []AddressFamily {
	return []AddressFamily{AddressFamilyIPv4, AddressFamilyIPv6}
}
