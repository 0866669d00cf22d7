// Package testutil provides common test helpers for vzconf tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coreos/go-semver/semver"

	"github.com/javanstorm/vzconf/internal/host"
	"github.com/javanstorm/vzconf/internal/platform"
)

// Probe is a host.Probe with fixed answers.
type Probe struct {
	Arch             string
	GOOS             string
	Version          *semver.Version
	PerformanceCores int
	PhysicalCores    int
}

var _ host.Probe = (*Probe)(nil)

func (p *Probe) Architecture() string            { return p.Arch }
func (p *Probe) OS() string                      { return p.GOOS }
func (p *Probe) ProductVersion() *semver.Version { return p.Version }
func (p *Probe) PerformanceCoreCount() int       { return p.PerformanceCores }
func (p *Probe) PhysicalCoreCount() int          { return p.PhysicalCores }

// AppleSiliconHost is an M-series Mac on macOS 14 with 8 performance and
// 4 efficiency cores.
func AppleSiliconHost() *Probe {
	return &Probe{
		Arch:             host.ArchAARCH64,
		GOOS:             "darwin",
		Version:          semver.New("14.5.0"),
		PerformanceCores: 8,
		PhysicalCores:    12,
	}
}

// OldAppleSiliconHost is an Apple silicon Mac still on macOS 11.
func OldAppleSiliconHost() *Probe {
	p := AppleSiliconHost()
	p.Version = semver.New("11.7.0")
	return p
}

// IntelMacHost is an Intel Mac on macOS 13 without core tiers.
func IntelMacHost() *Probe {
	return &Probe{
		Arch:          host.ArchX86_64,
		GOOS:          "darwin",
		Version:       semver.New("13.6.0"),
		PhysicalCores: 6,
	}
}

// LinuxHost is an x86_64 Linux machine.
func LinuxHost() *Probe {
	return &Probe{
		Arch:          host.ArchX86_64,
		GOOS:          "linux",
		PhysicalCores: 16,
	}
}

// MacPlatform returns complete Mac platform data.
func MacPlatform() *platform.Mac {
	return &platform.Mac{
		HardwareModel:        platform.Blob("hardware-model"),
		MachineIdentifier:    platform.Blob("machine-identifier"),
		AuxiliaryStoragePath: "/vms/mac.vzvm/AuxiliaryStorage",
	}
}

// WriteFile writes data under a fresh temporary directory and returns the path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
