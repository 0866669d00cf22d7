package system

import (
	"github.com/javanstorm/vzconf/internal/boot"
	"github.com/javanstorm/vzconf/internal/host"
	"github.com/javanstorm/vzconf/internal/legacy"
	"github.com/javanstorm/vzconf/internal/platform"
)

// Migrate converts a legacy record. The legacy schema had no architecture,
// so the host architecture is assumed. Memory is converted from bytes to
// MiB with truncation. Mac platform data only survives on hosts that can run
// macOS guests.
func Migrate(old *legacy.Configuration, p host.Probe) System {
	s := New(p)
	s.CPUCount = old.CPUCount
	s.MemorySize = int(old.MemorySize / bytesInMiB)
	if old.BootLoader != nil {
		s.Boot = boot.Migrate(old.BootLoader)
	}
	if host.Check(p, host.MacGuest) == nil {
		if old.MacPlatform != nil {
			s.Platform = platform.MigrateMac(old.MacPlatform)
		}
		s.Boot.MacRecoveryIPSWPath = old.MacRecoveryIPSWPath
	}
	if s.Boot.OperatingSystem == boot.Linux {
		s.Platform = platform.NewGeneric()
	}
	return s
}
