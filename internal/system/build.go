package system

import (
	"fmt"

	"github.com/javanstorm/vzconf/internal/boot"
	"github.com/javanstorm/vzconf/internal/host"
	"github.com/javanstorm/vzconf/pkg/hypervisor"
)

// Build resolves s into a hypervisor configuration for the host p. The host
// is queried on every call. Nothing is returned on error.
//
// A macOS guest fails with ErrPlatformUnsupported without Mac platform data
// or host support, since it has no usable default. Generic platform data is
// optional: when it is missing or cannot be used the configuration falls back
// to the host default.
//
// Build also fails with ErrArchitectureMismatch when the configured
// architecture differs from the host's, and with ErrInvalidCPUCount or
// ErrInvalidMemorySize when Validate rejects s.
func (s System) Build(p host.Probe) (*hypervisor.Configuration, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cfg := &hypervisor.Configuration{
		CPUCount:   uint(s.resolveCPUCount(p)),
		MemorySize: uint64(s.MemorySize) * bytesInMiB,
		BootLoader: s.Boot.BootLoader(),
	}

	if s.Boot.OperatingSystem == boot.MacOS {
		if err := host.Check(p, host.MacGuest); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPlatformUnsupported, err)
		}
		mac := s.MacPlatform()
		if mac == nil {
			return nil, fmt.Errorf("%w: macOS guest has no Mac platform data", ErrPlatformUnsupported)
		}
		platform, err := mac.Resolve()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPlatformUnsupported, err)
		}
		cfg.Platform = platform
		if s.UseCustomROM && s.ROMPath != "" {
			setROM(cfg.BootLoader, s.ROMPath)
		}
	}

	if arch := p.Architecture(); s.Architecture != arch {
		return nil, fmt.Errorf("%w: configured %s, host %s", ErrArchitectureMismatch, s.Architecture, arch)
	}

	if generic := s.GenericPlatform(); generic != nil && host.Check(p, host.GenericPlatform) == nil {
		if platform, err := generic.Resolve(); err == nil {
			cfg.Platform = platform
		}
	}

	if s.NeedDebug {
		cfg.DebugStub = &hypervisor.DebugStub{Port: s.DebugPort}
	}
	return cfg, nil
}

// resolveCPUCount prefers performance cores on hosts with mixed core types
// so guests are not scheduled onto efficiency cores.
func (s System) resolveCPUCount(p host.Probe) int {
	if s.CPUCount > 0 {
		return s.CPUCount
	}
	if n := p.PerformanceCoreCount(); n > 0 {
		return n
	}
	return p.PhysicalCoreCount()
}

// setROM overrides the firmware of a macOS boot loader. Any other loader
// here means the boot descriptor and guest kind disagree.
func setROM(b hypervisor.BootLoader, path string) {
	mac, ok := b.(*hypervisor.MacOSBootLoader)
	if !ok {
		panic(fmt.Sprintf("system: custom ROM requires a macOS boot loader, got %T", b))
	}
	mac.ROMPath = path
}
