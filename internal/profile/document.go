package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nx-sdk/nxsdk-go/pkg/nxtypes"
)

// document is the on-disk form of a profile. Enumerations are spelled by name
// and only converted once the whole document validated.
type document struct {
	Name          string                 `yaml:"name" validate:"required,max=64,nx_name"`
	Priority      string                 `yaml:"priority" validate:"omitempty,nx_priority"`
	RecordType    string                 `yaml:"record_type" validate:"omitempty,nx_record"`
	Subscriptions []subscriptionDocument `yaml:"subscriptions" validate:"dive"`
}

type subscriptionDocument struct {
	Events          []string `yaml:"events" validate:"required,min=1,dive,nx_event"`
	AddressFamilies []string `yaml:"address_families" validate:"dive,nx_af"`
	Encap           string   `yaml:"encap" validate:"omitempty,nx_encap"`
	State           string   `yaml:"state" validate:"omitempty,nx_state"`
}

// Parse decodes and validates a YAML profile.
func Parse(data []byte) (*Profile, error) {
	var doc document

	// Unknown keys are rejected so a misspelled field cannot silently fall
	// back to its default.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	return doc.toProfile()
}

func (d *document) toProfile() (*Profile, error) {
	p := &Profile{
		Name:       d.Name,
		Priority:   nxtypes.PriorityNone,
		RecordType: nxtypes.RecordTypeText,
	}

	var err error
	if d.Priority != "" {
		if p.Priority, err = nxtypes.ParsePriority(d.Priority); err != nil {
			return nil, err
		}
	}
	if d.RecordType != "" {
		if p.RecordType, err = nxtypes.ParseRecordType(d.RecordType); err != nil {
			return nil, err
		}
	}

	for _, sd := range d.Subscriptions {
		sub, err := sd.toSubscription()
		if err != nil {
			return nil, err
		}
		p.Subscriptions = append(p.Subscriptions, sub)
	}

	return p, nil
}

func (sd subscriptionDocument) toSubscription() (Subscription, error) {
	sub := Subscription{Encap: nxtypes.EncapTypeNone}

	for _, name := range sd.Events {
		ev, err := nxtypes.ParseEventType(name)
		if err != nil {
			return Subscription{}, err
		}
		sub.Events = append(sub.Events, ev)
	}

	if len(sd.AddressFamilies) == 0 {
		sub.AddressFamilies = []nxtypes.AddressFamily{nxtypes.AddressFamilyIPv4}
	}
	for _, name := range sd.AddressFamilies {
		af, err := nxtypes.ParseAddressFamily(name)
		if err != nil {
			return Subscription{}, err
		}
		sub.AddressFamilies = append(sub.AddressFamilies, af)
	}

	if sd.Encap != "" {
		encap, err := nxtypes.ParseEncapType(sd.Encap)
		if err != nil {
			return Subscription{}, err
		}
		sub.Encap = encap
	}

	if sd.State != "" {
		state, err := nxtypes.ParseStateType(sd.State)
		if err != nil {
			return Subscription{}, err
		}
		sub.State = &state
	}

	return sub, nil
}
