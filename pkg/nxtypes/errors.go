package nxtypes

import "fmt"

// ErrorKind identifies why a value could not be converted into one of the
// enumerations. It lets callers branch on the failure without string matching.
type ErrorKind int

const (
	// ErrKindOutOfRange indicates an integer outside the valid range of a type.
	ErrKindOutOfRange ErrorKind = iota

	// ErrKindUnknownName indicates a name that matches no member of a type.
	ErrKindUnknownName
)

// Error describes a failed conversion into one of the enumerations.
type Error struct {
	// Type is the enumeration the input was converted into, e.g. "RecordType".
	Type string
	// Input is the offending value as supplied by the caller.
	Input string

	kind ErrorKind
}

// Sentinels for use with errors.Is.
var (
	ErrOutOfRange  = &Error{kind: ErrKindOutOfRange}
	ErrUnknownName = &Error{kind: ErrKindUnknownName}
)

func (e *Error) Error() string {
	switch e.kind {
	case ErrKindOutOfRange:
		return fmt.Sprintf("%s value %s out of range", e.Type, e.Input)
	case ErrKindUnknownName:
		return fmt.Sprintf("unknown %s name %q", e.Type, e.Input)
	default:
		return fmt.Sprintf("invalid %s %q", e.Type, e.Input)
	}
}

// Kind returns the reason for the failure.
func (e *Error) Kind() ErrorKind { return e.kind }

// Is compares error kinds so that any conversion failure of the same kind
// matches the package sentinels regardless of type or input.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

func newOutOfRangeError(typ string, v int32) error {
	return &Error{Type: typ, Input: fmt.Sprintf("%d", v), kind: ErrKindOutOfRange}
}

func newUnknownNameError(typ, name string) error {
	return &Error{Type: typ, Input: name, kind: ErrKindUnknownName}
}
