package host

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
)

// Feature is a host capability that some configurations depend on.
type Feature int

const (
	// MacGuest is virtualization of macOS guests.
	MacGuest Feature = iota
	// GenericPlatform is a configurable generic platform identity.
	GenericPlatform
)

func (f Feature) String() string {
	switch f {
	case MacGuest:
		return "macOS guests"
	case GenericPlatform:
		return "generic platform"
	default:
		return fmt.Sprintf("Feature(%d)", int(f))
	}
}

// MinPlatformVersion is the first macOS release with Mac and generic
// platform configuration.
var MinPlatformVersion = semver.Version{Major: 12}

// UnsupportedError reports a feature the host cannot provide.
type UnsupportedError struct {
	Feature Feature
	Reason  string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("host: %s not supported: %s", e.Feature, e.Reason)
}

// Check reports whether p supports f. It returns nil or an *UnsupportedError.
func Check(p Probe, f Feature) error {
	if f == MacGuest && p.Architecture() != ArchAARCH64 {
		return &UnsupportedError{Feature: f, Reason: fmt.Sprintf("requires %s host, have %s", ArchAARCH64, p.Architecture())}
	}
	if p.OS() != "darwin" {
		return &UnsupportedError{Feature: f, Reason: fmt.Sprintf("requires macOS host, have %s", p.OS())}
	}
	v := p.ProductVersion()
	if v == nil {
		return &UnsupportedError{Feature: f, Reason: "unknown macOS version"}
	}
	if v.LessThan(MinPlatformVersion) {
		return &UnsupportedError{Feature: f, Reason: fmt.Sprintf("requires macOS %s or newer, have %s", MinPlatformVersion, v)}
	}
	return nil
}
