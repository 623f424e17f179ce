package nxtypes

import (
	"fmt"
	"strings"
)

// RecordType identifies how a record exchanged with the SDK is encoded, for
// example the output requested from a CLI show command.
type RecordType int32

const (
	// RecordTypeText is plain, human readable text.
	RecordTypeText RecordType = 0

	// RecordTypeJSON is a JSON document.
	RecordTypeJSON RecordType = 1

	// RecordTypeXML is an XML document.
	RecordTypeXML RecordType = 2

	// RecordTypeMax bounds the valid record types. It is never a record type itself.
	RecordTypeMax RecordType = 3
)

// String returns the short name of the record type.
func (r RecordType) String() string {
	switch r {
	case RecordTypeText:
		return "TEXT"
	case RecordTypeJSON:
		return "JSON"
	case RecordTypeXML:
		return "XML"
	case RecordTypeMax:
		return "MAX"
	default:
		return fmt.Sprintf("RecordType(%d)", int32(r))
	}
}

// SDKName returns the name the SDK headers use for the record type.
func (r RecordType) SDKName() string {
	switch r {
	case RecordTypeText:
		return "R_TEXT"
	case RecordTypeJSON:
		return "R_JSON"
	case RecordTypeXML:
		return "R_XML"
	case RecordTypeMax:
		return "R_MAX_TYPE"
	default:
		return ""
	}
}

// IsValid reports whether r is a real record type, i.e. below RecordTypeMax.
func (r RecordType) IsValid() bool { return r >= RecordTypeText && r < RecordTypeMax }

// Int32 returns the numeric value of the record type.
func (r RecordType) Int32() int32 { return int32(r) }

// RecordTypeFromInt32 converts a raw integer into a RecordType.
func RecordTypeFromInt32(i int32) (RecordType, error) {
	r := RecordType(i)
	if !r.IsValid() {
		return RecordTypeMax, newOutOfRangeError("RecordType", i)
	}
	return r, nil
}

// ParseRecordType converts a short name ("json") or SDK name ("R_JSON") into a
// RecordType. Matching is case-insensitive.
func ParseRecordType(s string) (RecordType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TEXT", "R_TEXT":
		return RecordTypeText, nil
	case "JSON", "R_JSON":
		return RecordTypeJSON, nil
	case "XML", "R_XML":
		return RecordTypeXML, nil
	default:
		return RecordTypeMax, newUnknownNameError("RecordType", s)
	}
}

// RecordTypeValues returns every valid record type in numeric order.
func RecordTypeValues() []RecordType {
	return []RecordType{RecordTypeText, RecordTypeJSON, RecordTypeXML}
}
