// Package cli provides the command-line interface for vzconf.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javanstorm/vzconf/internal/config"
	"github.com/javanstorm/vzconf/internal/host"
	"github.com/javanstorm/vzconf/internal/store"
)

// hostProbe is replaced in tests.
var hostProbe = host.Local

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vzconf",
	Short: "vzconf - resolve VM hardware settings for Virtualization.framework",
	Long: `vzconf reads VM hardware settings, migrates configurations written by
older releases, and resolves them into a hypervisor configuration using the
capabilities of this host: CPU topology, architecture and macOS version.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		if err := config.Load(); err != nil {
			return err
		}
		level, _ := logrus.ParseLevel(config.Global.LogLevel)
		if verbose {
			level = logrus.DebugLevel
		}
		logrus.SetLevel(level)
		if f := config.ConfigFileUsed(); f != "" {
			logrus.WithField("path", f).Debug("using tool config file")
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(hostCmd)
}

// openFile resolves a VM reference against the configured data directory.
func openFile(ref string) *store.File {
	cfg := config.Global
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return store.Open(store.BundlePath(cfg.DataDir, ref), cfg.DefaultFormat())
}
