package nxtypes

import (
	"fmt"
	"strings"
)

// EventType identifies the kind of change carried by a notification.
type EventType int32

const (
	// EventTypeNone means the notification is not a change event.
	EventTypeNone EventType = 0

	// EventTypeAdd reports a newly created object.
	EventTypeAdd EventType = 1

	// EventTypeDelete reports a removed object.
	EventTypeDelete EventType = 2

	// EventTypeUpdate reports a modified object.
	EventTypeUpdate EventType = 3

	// EventTypeMax bounds the valid event types. It is never an event type itself.
	EventTypeMax EventType = 4
)

// String returns the short name of the event type.
func (e EventType) String() string {
	switch e {
	case EventTypeNone:
		return "NONE"
	case EventTypeAdd:
		return "ADD"
	case EventTypeDelete:
		return "DELETE"
	case EventTypeUpdate:
		return "UPDATE"
	case EventTypeMax:
		return "MAX"
	default:
		return fmt.Sprintf("EventType(%d)", int32(e))
	}
}

// SDKName returns the name the SDK headers use for the event type.
func (e EventType) SDKName() string {
	switch e {
	case EventTypeNone:
		return "NO_EVENT"
	case EventTypeAdd:
		return "ADD"
	case EventTypeDelete:
		return "DELETE"
	case EventTypeUpdate:
		return "UPDATE"
	case EventTypeMax:
		return "E_MAX_TYPE"
	default:
		return ""
	}
}

// IsValid reports whether e is a real event type, i.e. below EventTypeMax.
func (e EventType) IsValid() bool { return e >= EventTypeNone && e < EventTypeMax }

// Int32 returns the numeric value of the event type.
func (e EventType) Int32() int32 { return int32(e) }

// EventTypeFromInt32 converts a raw integer into an EventType.
func EventTypeFromInt32(i int32) (EventType, error) {
	e := EventType(i)
	if !e.IsValid() {
		return EventTypeMax, newOutOfRangeError("EventType", i)
	}
	return e, nil
}

// ParseEventType converts a short name ("add") or SDK name ("NO_EVENT") into an
// EventType. Matching is case-insensitive.
func ParseEventType(s string) (EventType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "NO_EVENT":
		return EventTypeNone, nil
	case "ADD":
		return EventTypeAdd, nil
	case "DELETE":
		return EventTypeDelete, nil
	case "UPDATE":
		return EventTypeUpdate, nil
	default:
		return EventTypeMax, newUnknownNameError("EventType", s)
	}
}

// EventTypeValues returns every valid event type in numeric order.
func EventTypeValues() []EventType {
	return []EventType{EventTypeNone, EventTypeAdd, EventTypeDelete, EventTypeUpdate}
}
