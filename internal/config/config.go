package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/javanstorm/vzconf/internal/codec"
)

// Config holds all vzconf tool settings.
type Config struct {
	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`

	// Format is the encoding for new configuration files whose extension
	// does not name one.
	Format string `mapstructure:"format"`

	// DataDir holds VM bundles created without an explicit path.
	DataDir string `mapstructure:"data_dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	paths, err := GetPaths()
	if err != nil {
		// Fallback if we can't determine home directory
		paths = &Paths{
			DataDir: "/tmp/vzconf",
		}
	}

	return &Config{
		LogLevel: "info",
		Format:   string(codec.Plist),
		DataDir:  filepath.Join(paths.DataDir, "vms"),
	}
}

// Global holds the loaded configuration.
var Global *Config

// Load reads configuration from file, environment, and defaults.
func Load() error {
	paths, err := GetPaths()
	if err != nil {
		return fmt.Errorf("failed to determine paths: %w", err)
	}

	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("data_dir", defaults.DataDir)

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.DataDir)
	viper.AddConfigPath(paths.ConfigDir)

	// Environment variable support: VZCONF_LOG_LEVEL, VZCONF_FORMAT, etc.
	viper.SetEnvPrefix("VZCONF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file (optional - not an error if missing)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	Global = cfg
	return nil
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if _, err := codec.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	return nil
}

// DefaultFormat returns the configured format, or plist when unset.
func (c *Config) DefaultFormat() codec.Format {
	f, err := codec.ParseFormat(c.Format)
	if err != nil {
		return codec.Plist
	}
	return f
}

// ConfigFileUsed returns the path of the config file being used, if any.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
