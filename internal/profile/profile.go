// Package profile loads the settings an SDK application declares about itself:
// the CPU priority it requests, the record format it consumes, and the change
// notifications it subscribes to.
package profile

import (
	"slices"

	"github.com/nx-sdk/nxsdk-go/pkg/nxtypes"
)

// Profile is a validated application profile.
type Profile struct {
	Name          string
	Priority      nxtypes.Priority
	RecordType    nxtypes.RecordType
	Subscriptions []Subscription
}

// Subscription selects the notifications an application wants to receive.
type Subscription struct {
	Events          []nxtypes.EventType
	AddressFamilies []nxtypes.AddressFamily
	Encap           nxtypes.EncapType
	// State restricts the subscription to objects in one state. Nil matches any.
	State *nxtypes.StateType
}

// Matches reports whether a notification with the given attributes is
// selected by the subscription.
func (s Subscription) Matches(
	ev nxtypes.EventType,
	af nxtypes.AddressFamily,
	encap nxtypes.EncapType,
	state nxtypes.StateType,
) bool {
	if !slices.Contains(s.Events, ev) {
		return false
	}
	if !slices.Contains(s.AddressFamilies, af) {
		return false
	}
	if s.Encap != encap {
		return false
	}
	return s.State == nil || *s.State == state
}

// Wants reports whether any subscription of the profile selects the
// notification.
func (p *Profile) Wants(
	ev nxtypes.EventType,
	af nxtypes.AddressFamily,
	encap nxtypes.EncapType,
	state nxtypes.StateType,
) bool {
	for _, s := range p.Subscriptions {
		if s.Matches(ev, af, encap, state) {
			return true
		}
	}
	return false
}
