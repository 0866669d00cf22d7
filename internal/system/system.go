// Package system is the hardware settings of a VM: the persisted schema,
// migration from the legacy schema, and resolution into a hypervisor
// configuration against the capabilities of the host.
package system

import (
	"math"

	"github.com/javanstorm/vzconf/internal/boot"
	"github.com/javanstorm/vzconf/internal/host"
	"github.com/javanstorm/vzconf/internal/platform"
)

// Defaults for a new configuration.
const (
	DefaultMemorySize = 4096
	DefaultDebugPort  = 10086
)

// bytesInMiB converts between the persisted MiB and hypervisor bytes.
const bytesInMiB = 1048576

// System holds the hardware settings of a VM.
type System struct {
	// Architecture is the guest CPU architecture, e.g. "aarch64".
	Architecture string

	// CPUCount is the number of virtual CPUs. 0 selects a count from the
	// host topology at resolution time.
	CPUCount int

	// MemorySize is the guest RAM in MiB.
	MemorySize int

	NeedDebug bool
	DebugPort int

	// UseCustomROM replaces the macOS firmware with ROMPath.
	UseCustomROM bool
	ROMPath      string

	Boot boot.Boot

	// Platform is *platform.Mac, *platform.Generic or nil.
	Platform platform.Variant
}

// New returns a configuration with default settings for the host p.
func New(p host.Probe) System {
	return System{
		Architecture: p.Architecture(),
		MemorySize:   DefaultMemorySize,
		DebugPort:    DefaultDebugPort,
		Boot:         boot.New(boot.None),
	}
}

// Default returns a configuration with default settings for this host.
func Default() System {
	return New(host.Local())
}

// MacPlatform returns the Mac platform data, if any.
func (s System) MacPlatform() *platform.Mac {
	m, _ := s.Platform.(*platform.Mac)
	return m
}

// GenericPlatform returns the generic platform data, if any.
func (s System) GenericPlatform() *platform.Generic {
	g, _ := s.Platform.(*platform.Generic)
	return g
}

// maxMemorySize is the largest size in MiB whose byte count fits a uint64.
const maxMemorySize uint64 = math.MaxUint64 / bytesInMiB

// Validate checks the numeric invariants of the configuration.
func (s System) Validate() error {
	if s.CPUCount < 0 {
		return ErrInvalidCPUCount
	}
	if s.MemorySize <= 0 || uint64(s.MemorySize) > maxMemorySize {
		return ErrInvalidMemorySize
	}
	return nil
}
