// Package platform holds the guest-family specific identity a hypervisor
// needs beyond CPU, memory and boot settings.
package platform

import (
	"encoding/base64"
	"errors"

	"github.com/javanstorm/vzconf/pkg/hypervisor"
)

// ErrIncomplete is returned when platform data lacks a required part.
var ErrIncomplete = errors.New("platform: incomplete platform data")

// Variant is the platform data of a configuration: *Mac or *Generic.
// A nil Variant means no platform data.
type Variant interface {
	// Resolve converts the data into a hypervisor platform.
	Resolve() (hypervisor.Platform, error)
	variant()
}

// Blob is opaque binary data stored as base64 in text encodings.
type Blob []byte

// MarshalText implements encoding.TextMarshaler.
func (b Blob) MarshalText() ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Blob) UnmarshalText(text []byte) error {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(out, text)
	if err != nil {
		return err
	}
	*b = out[:n]
	return nil
}
