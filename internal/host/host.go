// Package host reports the capabilities of the machine vzconf runs on.
//
// Every query reads live host state. Nothing is cached, so a probe can be
// shared between goroutines and always reflects hot-plugged CPUs.
package host

import (
	"runtime"

	"github.com/coreos/go-semver/semver"
	"github.com/shirou/gopsutil/cpu"
)

// Architecture identifiers as persisted in configurations.
const (
	ArchAARCH64 = "aarch64"
	ArchX86_64  = "x86_64"
)

// Probe answers questions about the host.
type Probe interface {
	// Architecture returns the host CPU architecture, e.g. "aarch64".
	Architecture() string

	// OS returns the host operating system as runtime.GOOS spells it.
	OS() string

	// ProductVersion returns the macOS product version, or nil when it
	// is unknown or the host is not macOS.
	ProductVersion() *semver.Version

	// PerformanceCoreCount returns the number of performance-tier physical
	// cores, or 0 when the host does not report core tiers.
	PerformanceCoreCount() int

	// PhysicalCoreCount returns the number of physical cores.
	PhysicalCoreCount() int
}

// Local returns a Probe for the running host.
func Local() Probe {
	return localProbe{}
}

type localProbe struct{}

func (localProbe) Architecture() string {
	return ArchitectureFromGOARCH(runtime.GOARCH)
}

func (localProbe) OS() string {
	return runtime.GOOS
}

func (localProbe) ProductVersion() *semver.Version {
	return productVersion()
}

func (localProbe) PerformanceCoreCount() int {
	return performanceCoreCount()
}

func (localProbe) PhysicalCoreCount() int {
	n, err := cpu.Counts(false)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// ArchitectureFromGOARCH maps a Go architecture name to the identifier used
// in configurations. Unknown names pass through unchanged.
func ArchitectureFromGOARCH(goarch string) string {
	switch goarch {
	case "arm64":
		return ArchAARCH64
	case "amd64":
		return ArchX86_64
	default:
		return goarch
	}
}

// ParseProductVersion parses a macOS product version such as "14.5" or
// "15.0.1". Missing minor or patch components are treated as zero.
func ParseProductVersion(s string) (*semver.Version, error) {
	parts := 1
	for _, r := range s {
		if r == '.' {
			parts++
		}
	}
	for ; parts < 3; parts++ {
		s += ".0"
	}
	return semver.NewVersion(s)
}
