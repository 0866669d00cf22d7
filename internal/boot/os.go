package boot

import (
	"fmt"
	"strings"
)

// OperatingSystem classifies the guest operating system family.
type OperatingSystem int

const (
	// None is a guest with no operating system selected yet.
	None OperatingSystem = iota
	// MacOS is a macOS guest.
	MacOS
	// Linux is a Linux guest.
	Linux
)

var osNames = map[OperatingSystem]string{
	None:  "None",
	MacOS: "macOS",
	Linux: "Linux",
}

func (o OperatingSystem) String() string {
	if s, ok := osNames[o]; ok {
		return s
	}
	return fmt.Sprintf("OperatingSystem(%d)", int(o))
}

// ParseOperatingSystem accepts the persisted names, case-insensitively.
func ParseOperatingSystem(s string) (OperatingSystem, error) {
	for o, name := range osNames {
		if strings.EqualFold(s, name) {
			return o, nil
		}
	}
	return None, fmt.Errorf("boot: unknown operating system %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o OperatingSystem) MarshalText() ([]byte, error) {
	s, ok := osNames[o]
	if !ok {
		return nil, fmt.Errorf("boot: unknown operating system %d", int(o))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OperatingSystem) UnmarshalText(text []byte) error {
	v, err := ParseOperatingSystem(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
