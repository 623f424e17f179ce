// Package nxtypes holds the common types shared by NX-SDK applications: record
// formats, event kinds, operational states, encapsulation kinds, address
// families, and application priorities.
//
// Every type is a distinct integer enumeration. The numeric values are part of
// the public contract and match the values used by the SDK on the switch, so a
// value persisted or transmitted as a raw integer keeps its meaning.
package nxtypes
