package nxtypes

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Group names one of the enumerations in this package.
type Group string

const (
	GroupRecordType    Group = "record_type"
	GroupEventType     Group = "event_type"
	GroupStateType     Group = "state_type"
	GroupEncapType     Group = "encap_type"
	GroupAddressFamily Group = "address_family"
	GroupPriority      Group = "priority"
)

// String returns the string representation of the Group.
func (g Group) String() string { return string(g) }

// GroupError is returned when a group name is not recognized.
type GroupError struct {
	Group string
}

func (e *GroupError) Error() string { return fmt.Sprintf("unknown type group: %q", e.Group) }

// Groups returns every group in a stable order.
func Groups() []Group {
	return []Group{
		GroupRecordType,
		GroupEventType,
		GroupStateType,
		GroupEncapType,
		GroupAddressFamily,
		GroupPriority,
	}
}

// ParseGroup resolves a group name. Case, dashes, underscores, and a trailing
// "type" are ignored, so "record", "RecordType" and "record-type" all match.
func ParseGroup(s string) (Group, error) {
	key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "record", "recordtype":
		return GroupRecordType, nil
	case "event", "eventtype":
		return GroupEventType, nil
	case "state", "statetype":
		return GroupStateType, nil
	case "encap", "encaptype":
		return GroupEncapType, nil
	case "af", "addressfamily":
		return GroupAddressFamily, nil
	case "prio", "priority":
		return GroupPriority, nil
	default:
		return "", &GroupError{Group: s}
	}
}

// typeName returns the Go type name of the group's enumeration.
func (g Group) typeName() string {
	switch g {
	case GroupRecordType:
		return "RecordType"
	case GroupEventType:
		return "EventType"
	case GroupStateType:
		return "StateType"
	case GroupEncapType:
		return "EncapType"
	case GroupAddressFamily:
		return "AddressFamily"
	case GroupPriority:
		return "Priority"
	default:
		return string(g)
	}
}

// Member describes one valid value of a group.
type Member struct {
	Group   Group
	Name    string
	SDKName string
	Value   int32
}

type enum interface {
	String() string
	SDKName() string
	Int32() int32
}

func toMembers[T enum](g Group, values []T) []Member {
	members := make([]Member, 0, len(values))
	for _, v := range values {
		members = append(members, newMember(g, v))
	}
	return members
}

func newMember(g Group, v enum) Member {
	return Member{Group: g, Name: v.String(), SDKName: v.SDKName(), Value: v.Int32()}
}

// Members returns the valid members of g in numeric order. Sentinels and the
// AddressFamilyStart alias are not listed. An unknown group yields nil.
func Members(g Group) []Member {
	switch g {
	case GroupRecordType:
		return toMembers(g, RecordTypeValues())
	case GroupEventType:
		return toMembers(g, EventTypeValues())
	case GroupStateType:
		return toMembers(g, StateTypeValues())
	case GroupEncapType:
		return toMembers(g, EncapTypeValues())
	case GroupAddressFamily:
		return toMembers(g, AddressFamilyValues())
	case GroupPriority:
		return toMembers(g, PriorityValues())
	default:
		return nil
	}
}

// Lookup resolves input within g. The input is either a member name, as
// accepted by the group's Parse function, or its decimal value. Decimals that
// do not fit in an int32 are reported as out of range.
func Lookup(g Group, input string) (Member, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	switch {
	case err == nil:
		return lookupValue(g, int32(n))
	case errors.Is(err, strconv.ErrRange):
		if !slices.Contains(Groups(), g) {
			return Member{}, &GroupError{Group: string(g)}
		}
		return Member{}, &Error{Type: g.typeName(), Input: strings.TrimSpace(input), kind: ErrKindOutOfRange}
	default:
		return lookupName(g, input)
	}
}

func lookupValue(g Group, n int32) (Member, error) {
	var (
		v   enum
		err error
	)
	switch g {
	case GroupRecordType:
		v, err = RecordTypeFromInt32(n)
	case GroupEventType:
		v, err = EventTypeFromInt32(n)
	case GroupStateType:
		v, err = StateTypeFromInt32(n)
	case GroupEncapType:
		v, err = EncapTypeFromInt32(n)
	case GroupAddressFamily:
		v, err = AddressFamilyFromInt32(n)
	case GroupPriority:
		v, err = PriorityFromInt32(n)
	default:
		return Member{}, &GroupError{Group: string(g)}
	}
	if err != nil {
		return Member{}, err
	}
	return newMember(g, v), nil
}

func lookupName(g Group, name string) (Member, error) {
	var (
		v   enum
		err error
	)
	switch g {
	case GroupRecordType:
		v, err = ParseRecordType(name)
	case GroupEventType:
		v, err = ParseEventType(name)
	case GroupStateType:
		v, err = ParseStateType(name)
	case GroupEncapType:
		v, err = ParseEncapType(name)
	case GroupAddressFamily:
		v, err = ParseAddressFamily(name)
	case GroupPriority:
		v, err = ParsePriority(name)
	default:
		return Member{}, &GroupError{Group: string(g)}
	}
	if err != nil {
		return Member{}, err
	}
	return newMember(g, v), nil
}
