package system

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javanstorm/vzconf/internal/boot"
	"github.com/javanstorm/vzconf/internal/host"
	"github.com/javanstorm/vzconf/internal/legacy"
	"github.com/javanstorm/vzconf/internal/platform"
	"github.com/javanstorm/vzconf/internal/testutil"
	"github.com/javanstorm/vzconf/pkg/hypervisor"
)

func legacyMac() *legacy.Configuration {
	return &legacy.Configuration{
		CPUCount:            4,
		MemorySize:          8 << 30,
		BootLoader:          &legacy.BootLoader{OperatingSystem: legacy.OSMacOS},
		MacPlatform:         &legacy.MacPlatform{HardwareModel: []byte("hw"), MachineIdentifier: []byte("id"), AuxiliaryStoragePath: "/aux"},
		MacRecoveryIPSWPath: "/ipsw/restore.ipsw",
	}
}

func TestMigrateMemory(t *testing.T) {
	s := Migrate(&legacy.Configuration{MemorySize: 2097152}, testutil.AppleSiliconHost())
	assert.Equal(t, 2, s.MemorySize)
}

// Legacy sizes that are not MiB aligned lose the remainder.
func TestMigrateMemoryTruncates(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  int
	}{
		{1048575, 0},
		{1048576, 1},
		{1048577, 1},
		{3*1048576 - 1, 2},
	}
	for _, tt := range tests {
		s := Migrate(&legacy.Configuration{MemorySize: tt.bytes}, testutil.LinuxHost())
		assert.Equal(t, tt.want, s.MemorySize, "bytes=%d", tt.bytes)
	}
}

func TestMigrateUsesHostArchitecture(t *testing.T) {
	assert.Equal(t, host.ArchAARCH64, Migrate(legacyMac(), testutil.AppleSiliconHost()).Architecture)
	assert.Equal(t, host.ArchX86_64, Migrate(legacyMac(), testutil.IntelMacHost()).Architecture)
}

func TestMigrateKeepsDefaults(t *testing.T) {
	s := Migrate(&legacy.Configuration{CPUCount: 3, MemorySize: 1 << 30}, testutil.LinuxHost())
	assert.Equal(t, 3, s.CPUCount)
	assert.Equal(t, 1024, s.MemorySize)
	assert.Equal(t, DefaultDebugPort, s.DebugPort)
	assert.Equal(t, boot.None, s.Boot.OperatingSystem)
	assert.Nil(t, s.Platform)
}

func TestMigrateMacOnCapableHost(t *testing.T) {
	s := Migrate(legacyMac(), testutil.AppleSiliconHost())

	assert.Equal(t, 4, s.CPUCount)
	assert.Equal(t, 8192, s.MemorySize)
	assert.Equal(t, boot.MacOS, s.Boot.OperatingSystem)
	assert.Equal(t, "/ipsw/restore.ipsw", s.Boot.MacRecoveryIPSWPath)
	require.NotNil(t, s.MacPlatform())
	assert.Equal(t, platform.Blob("hw"), s.MacPlatform().HardwareModel)

	cfg, err := s.Build(testutil.AppleSiliconHost())
	require.NoError(t, err)
	assert.IsType(t, &hypervisor.MacPlatform{}, cfg.Platform)
}

func TestMigrateMacOnIncapableHost(t *testing.T) {
	for name, p := range map[string]*testutil.Probe{
		"intel":   testutil.IntelMacHost(),
		"big sur": testutil.OldAppleSiliconHost(),
		"linux":   testutil.LinuxHost(),
	} {
		t.Run(name, func(t *testing.T) {
			s := Migrate(legacyMac(), p)
			assert.Equal(t, boot.MacOS, s.Boot.OperatingSystem)
			assert.Nil(t, s.Platform)
			assert.Empty(t, s.Boot.MacRecoveryIPSWPath)
		})
	}
}

func TestMigrateLinuxGetsGenericPlatform(t *testing.T) {
	old := &legacy.Configuration{
		CPUCount:   2,
		MemorySize: 2 << 30,
		BootLoader: &legacy.BootLoader{OperatingSystem: legacy.OSLinux, LinuxKernelPath: "/k"},
		// Stale Mac data on a Linux record is replaced.
		MacPlatform: &legacy.MacPlatform{HardwareModel: []byte("hw")},
	}
	s := Migrate(old, testutil.AppleSiliconHost())

	assert.Equal(t, boot.Linux, s.Boot.OperatingSystem)
	assert.Equal(t, "/k", s.Boot.LinuxKernelPath)
	require.NotNil(t, s.GenericPlatform())
	assert.Empty(t, s.GenericPlatform().MachineIdentifier)
}

func TestMigrateIsPure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	probes := []*testutil.Probe{testutil.AppleSiliconHost(), testutil.IntelMacHost(), testutil.LinuxHost()}
	oses := []string{"", legacy.OSLinux, legacy.OSMacOS}

	properties.Property("migrating the same record twice gives equal results", prop.ForAll(
		func(cpus int, mem uint64, osIdx int, probeIdx int, withMac bool) bool {
			old := &legacy.Configuration{CPUCount: cpus, MemorySize: mem}
			if oses[osIdx] != "" {
				old.BootLoader = &legacy.BootLoader{OperatingSystem: oses[osIdx], LinuxKernelPath: "/k"}
			}
			if withMac {
				old.MacPlatform = &legacy.MacPlatform{HardwareModel: []byte("hw"), MachineIdentifier: []byte("id"), AuxiliaryStoragePath: "/aux"}
			}
			p := probes[probeIdx]
			a, b := Migrate(old, p), Migrate(old, p)
			return assert.ObjectsAreEqual(a, b)
		},
		gen.IntRange(0, 64),
		gen.UInt64Range(0, 1<<40),
		gen.IntRange(0, len(oses)-1),
		gen.IntRange(0, len(probes)-1),
		gen.Bool(),
	))

	properties.Property("memory is bytes divided by 1MiB", prop.ForAll(
		func(mem uint64) bool {
			return Migrate(&legacy.Configuration{MemorySize: mem}, testutil.LinuxHost()).MemorySize == int(mem/1048576)
		},
		gen.UInt64Range(0, 1<<42),
	))

	properties.TestingRun(t)
}
