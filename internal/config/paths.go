// Package config provides the vzconf tool settings and where they live.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds platform-specific directory paths for vzconf.
type Paths struct {
	// ConfigDir holds config.yaml.
	// macOS: ~/Library/Application Support/vzconf
	// Linux: $XDG_CONFIG_HOME/vzconf, else ~/.config/vzconf
	ConfigDir string

	// DataDir holds VM bundles. All platforms: ~/.vzconf
	DataDir string
}

// GetPaths returns platform-aware paths for vzconf.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	p := &Paths{DataDir: filepath.Join(home, ".vzconf")}
	switch {
	case runtime.GOOS == "darwin":
		p.ConfigDir = filepath.Join(home, "Library", "Application Support", "vzconf")
	case os.Getenv("XDG_CONFIG_HOME") != "":
		p.ConfigDir = filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "vzconf")
	default:
		p.ConfigDir = filepath.Join(home, ".config", "vzconf")
	}
	return p, nil
}
