package nxtypes

import (
	"fmt"
	"strings"
)

// StateType is the operational state of an object such as an interface.
type StateType int32

const (
	// StateTypeDown means the object is operationally down.
	StateTypeDown StateType = 0

	// StateTypeUp means the object is operationally up.
	StateTypeUp StateType = 1

	// StateTypeMax bounds the valid states. It is never a state itself.
	StateTypeMax StateType = 2
)

// String returns the short name of the state.
func (s StateType) String() string {
	switch s {
	case StateTypeDown:
		return "DOWN"
	case StateTypeUp:
		return "UP"
	case StateTypeMax:
		return "MAX"
	default:
		return fmt.Sprintf("StateType(%d)", int32(s))
	}
}

// SDKName returns the name the SDK headers use for the state.
func (s StateType) SDKName() string {
	switch s {
	case StateTypeDown:
		return "DOWN"
	case StateTypeUp:
		return "UP"
	case StateTypeMax:
		return "S_MAX_TYPE"
	default:
		return ""
	}
}

// IsValid reports whether s is a real state, i.e. below StateTypeMax.
func (s StateType) IsValid() bool { return s >= StateTypeDown && s < StateTypeMax }

// Int32 returns the numeric value of the state.
func (s StateType) Int32() int32 { return int32(s) }

// StateTypeFromInt32 converts a raw integer into a StateType.
func StateTypeFromInt32(i int32) (StateType, error) {
	s := StateType(i)
	if !s.IsValid() {
		return StateTypeMax, newOutOfRangeError("StateType", i)
	}
	return s, nil
}

// ParseStateType converts "up" or "down" into a StateType. Matching is
// case-insensitive.
func ParseStateType(str string) (StateType, error) {
	switch strings.ToUpper(strings.TrimSpace(str)) {
	case "DOWN":
		return StateTypeDown, nil
	case "UP":
		return StateTypeUp, nil
	default:
		return StateTypeMax, newUnknownNameError("StateType", str)
	}
}

// StateTypeValues returns every valid state in numeric order.
func StateTypeValues() []StateType { return []StateType{StateTypeDown, StateTypeUp} }
