// Package store reads and writes VM configuration files.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javanstorm/vzconf/internal/codec"
	"github.com/javanstorm/vzconf/internal/host"
	"github.com/javanstorm/vzconf/internal/legacy"
	"github.com/javanstorm/vzconf/internal/system"
)

// Bundle layout.
const (
	BundleExt        = ".vzvm"
	BundleConfigName = "config.plist"
)

// ErrLegacy is returned by Load for records in the legacy format.
var ErrLegacy = errors.New("store: configuration is in the legacy format")

// File manages one configuration file.
type File struct {
	path   string
	format codec.Format
}

// Open returns a File for path. A directory or a path ending in BundleExt
// is treated as a VM bundle holding config.plist. Otherwise the format
// follows the file extension, falling back to def.
func Open(path string, def codec.Format) *File {
	if isBundle(path) {
		return &File{path: filepath.Join(path, BundleConfigName), format: codec.Plist}
	}
	return &File{path: path, format: codec.FormatForPath(path, def)}
}

func isBundle(path string) bool {
	if filepath.Ext(path) == BundleExt {
		return true
	}
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

// BundlePath resolves a VM reference. Anything that looks like a path is
// returned unchanged; a bare name becomes <dataDir>/<name>.vzvm.
func BundlePath(dataDir, ref string) string {
	if strings.ContainsRune(ref, filepath.Separator) || filepath.Ext(ref) != "" {
		return ref
	}
	return filepath.Join(dataDir, ref+BundleExt)
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Format returns the encoding used for the file.
func (f *File) Format() codec.Format {
	return f.format
}

func (f *File) read() (map[string]any, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	raw, err := codec.Unmarshal(data, f.format)
	if err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return raw, nil
}

// Load reads the configuration. Legacy records fail with ErrLegacy.
func (f *File) Load() (system.System, error) {
	raw, err := f.read()
	if err != nil {
		return system.System{}, err
	}
	if legacy.IsLegacy(raw) {
		return system.System{}, ErrLegacy
	}
	return system.Decode(raw)
}

// LoadLegacy reads a legacy record.
func (f *File) LoadLegacy() (*legacy.Configuration, error) {
	raw, err := f.read()
	if err != nil {
		return nil, err
	}
	return legacy.Decode(raw)
}

// LoadOrMigrate reads the configuration, migrating a legacy record for the
// host p. migrated reports whether a migration took place; the file itself
// is not rewritten.
func (f *File) LoadOrMigrate(p host.Probe) (s system.System, migrated bool, err error) {
	raw, err := f.read()
	if err != nil {
		return system.System{}, false, err
	}
	if !legacy.IsLegacy(raw) {
		s, err = system.Decode(raw)
		return s, false, err
	}
	old, err := legacy.Decode(raw)
	if err != nil {
		return system.System{}, false, err
	}
	logrus.WithField("path", f.path).Debug("migrating legacy configuration")
	return system.Migrate(old, p), true, nil
}

// Save writes the configuration.
func (f *File) Save(s system.System) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := codec.Marshal(s.Encode(), f.format)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// Write atomically
	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	logrus.WithFields(logrus.Fields{"path": f.path, "format": f.format}).Debug("saved configuration")
	return os.Rename(tmpPath, f.path)
}
