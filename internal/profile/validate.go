package profile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nx-sdk/nxsdk-go/pkg/nxtypes"
)

// FieldError describes one rejected profile field.
type FieldError struct {
	Field string
	Value string
	Rule  string
}

// ValidationError collects every rejected field of a profile.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: failed %s (value %q)", f.Field, f.Rule, f.Value))
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their YAML names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"nx_name": func(fl validator.FieldLevel) bool { return validName(fl.Field().String()) },
		"nx_priority": func(fl validator.FieldLevel) bool {
			_, err := nxtypes.ParsePriority(fl.Field().String())
			return err == nil
		},
		"nx_record": func(fl validator.FieldLevel) bool {
			_, err := nxtypes.ParseRecordType(fl.Field().String())
			return err == nil
		},
		// A subscription to "no event" would never match anything.
		"nx_event": func(fl validator.FieldLevel) bool {
			ev, err := nxtypes.ParseEventType(fl.Field().String())
			return err == nil && ev != nxtypes.EventTypeNone
		},
		"nx_af": func(fl validator.FieldLevel) bool {
			_, err := nxtypes.ParseAddressFamily(fl.Field().String())
			return err == nil
		},
		"nx_encap": func(fl validator.FieldLevel) bool {
			_, err := nxtypes.ParseEncapType(fl.Field().String())
			return err == nil
		},
		"nx_state": func(fl validator.FieldLevel) bool {
			_, err := nxtypes.ParseStateType(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s: %v", tag, err))
		}
	}

	return v
}

func validName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func validateDocument(doc *document) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate profile: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		out.Fields = append(out.Fields, FieldError{
			Field: field,
			Value: fmt.Sprint(fe.Value()),
			Rule:  fe.Tag(),
		})
	}
	return out
}
