package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javanstorm/vzconf/internal/boot"
	"github.com/javanstorm/vzconf/internal/codec"
	"github.com/javanstorm/vzconf/internal/host"
	"github.com/javanstorm/vzconf/internal/system"
	"github.com/javanstorm/vzconf/internal/testutil"
)

const legacyLinuxJSON = `{
  "CPUCount": 2,
  "MemorySize": 2147483648,
  "BootLoader": {
    "OperatingSystem": "Linux",
    "LinuxKernelURL": "/vms/vmlinuz",
    "LinuxCommandLine": "console=hvc0"
  }
}`

func linuxSystem() system.System {
	s := system.New(testutil.AppleSiliconHost())
	s.CPUCount = 4
	s.Boot = boot.Boot{
		OperatingSystem:         boot.Linux,
		LinuxKernelPath:         "/vms/vmlinuz",
		LinuxInitialRamdiskPath: "/vms/initrd",
		LinuxCommandLine:        "console=hvc0",
	}
	return s
}

func TestOpenFormat(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		path       string
		wantPath   string
		wantFormat codec.Format
	}{
		{filepath.Join(dir, "vm.json"), filepath.Join(dir, "vm.json"), codec.JSON},
		{filepath.Join(dir, "vm.yml"), filepath.Join(dir, "vm.yml"), codec.YAML},
		{filepath.Join(dir, "vm.plist"), filepath.Join(dir, "vm.plist"), codec.Plist},
		{filepath.Join(dir, "vm.conf"), filepath.Join(dir, "vm.conf"), codec.YAML},
		{filepath.Join(dir, "debian.vzvm"), filepath.Join(dir, "debian.vzvm", BundleConfigName), codec.Plist},
		{dir, filepath.Join(dir, BundleConfigName), codec.Plist},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			f := Open(tt.path, codec.YAML)
			assert.Equal(t, tt.wantPath, f.Path())
			assert.Equal(t, tt.wantFormat, f.Format())
		})
	}
}

func TestBundlePath(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"debian", filepath.Join("/data", "debian.vzvm")},
		{"debian.vzvm", "debian.vzvm"},
		{"./vm.json", "./vm.json"},
		{"/tmp/vm", "/tmp/vm"},
	}

	for _, tt := range tests {
		if got := BundlePath("/data", tt.ref); got != tt.want {
			t.Errorf("BundlePath(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	for _, format := range []codec.Format{codec.Plist, codec.JSON, codec.YAML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "vm."+string(format))
			f := Open(path, codec.Plist)
			want := linuxSystem()

			require.NoError(t, f.Save(want))

			_, err := os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err), "temporary file left behind")

			got, err := f.Load()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSaveLoadBundle(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "mac.vzvm")
	want := system.New(testutil.AppleSiliconHost())
	want.Boot = boot.New(boot.MacOS)
	want.Platform = testutil.MacPlatform()

	require.NoError(t, Open(bundle, codec.JSON).Save(want))
	assert.FileExists(t, filepath.Join(bundle, BundleConfigName))

	got, err := Open(bundle, codec.JSON).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.json"), codec.JSON).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	path := testutil.WriteFile(t, "vm.json", []byte("{not json"))
	_, err := Open(path, codec.JSON).Load()
	assert.Error(t, err)
}

func TestLoadLegacy(t *testing.T) {
	path := testutil.WriteFile(t, "vm.json", []byte(legacyLinuxJSON))
	f := Open(path, codec.Plist)

	_, err := f.Load()
	assert.ErrorIs(t, err, ErrLegacy)

	old, err := f.LoadLegacy()
	require.NoError(t, err)
	assert.Equal(t, uint64(2147483648), old.MemorySize)
	require.NotNil(t, old.BootLoader)
	assert.Equal(t, "/vms/vmlinuz", old.BootLoader.LinuxKernelPath)
}

func TestLoadOrMigrate(t *testing.T) {
	p := testutil.IntelMacHost()

	t.Run("legacy", func(t *testing.T) {
		path := testutil.WriteFile(t, "vm.json", []byte(legacyLinuxJSON))
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		s, migrated, err := Open(path, codec.JSON).LoadOrMigrate(p)
		require.NoError(t, err)
		assert.True(t, migrated)
		assert.Equal(t, host.ArchX86_64, s.Architecture)
		assert.Equal(t, 2, s.CPUCount)
		assert.Equal(t, 2048, s.MemorySize)
		assert.Equal(t, boot.Linux, s.Boot.OperatingSystem)
		assert.Equal(t, "console=hvc0", s.Boot.LinuxCommandLine)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after, "file rewritten by LoadOrMigrate")
	})

	t.Run("current", func(t *testing.T) {
		f := Open(filepath.Join(t.TempDir(), "vm.yaml"), codec.YAML)
		want := linuxSystem()
		require.NoError(t, f.Save(want))

		got, migrated, err := f.LoadOrMigrate(p)
		require.NoError(t, err)
		assert.False(t, migrated)
		assert.Equal(t, want, got)
	})
}

func TestCurrentRecordMissingArchitecture(t *testing.T) {
	path := testutil.WriteFile(t, "vm.json", []byte(`{
  "CPUCount": 2,
  "MemorySize": 4096,
  "Boot": {"OperatingSystem": "Linux", "LinuxKernelPath": "/k"}
}`))
	f := Open(path, codec.JSON)

	_, err := f.Load()
	assert.True(t, errors.Is(err, system.ErrMissingField), "Load() err = %v", err)
	assert.False(t, errors.Is(err, ErrLegacy))

	_, migrated, err := f.LoadOrMigrate(testutil.AppleSiliconHost())
	assert.True(t, errors.Is(err, system.ErrMissingField), "LoadOrMigrate() err = %v", err)
	assert.False(t, migrated)

	var missing *system.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Architecture", missing.Field)
}
