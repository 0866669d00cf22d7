package cli

import (
	"fmt"
	"io"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javanstorm/vzconf/pkg/hypervisor"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <vm>",
	Short: "Resolve a VM configuration against this host",
	Long: `Resolve a VM configuration into the settings handed to the hypervisor.

Legacy configurations are migrated in memory first. With --validate the
result is also checked by Virtualization.framework (macOS only).`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

var resolveValidate bool

func init() {
	resolveCmd.Flags().BoolVar(&resolveValidate, "validate", false, "Validate with Virtualization.framework")
}

func runResolve(cmd *cobra.Command, args []string) error {
	file := openFile(args[0])
	probe := hostProbe()

	s, migrated, err := file.LoadOrMigrate(probe)
	if err != nil {
		return fmt.Errorf("load %s: %w", file.Path(), err)
	}
	if migrated {
		logrus.Warnf("%s uses the legacy format; run 'vzconf migrate' to upgrade it", file.Path())
	}

	cfg, err := s.Build(probe)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", file.Path(), err)
	}

	if resolveValidate {
		if !hypervisor.SupportedPlatform() {
			return hypervisor.ErrUnsupportedPlatform
		}
		if err := hypervisor.Verify(cfg); err != nil {
			return err
		}
	}

	printConfiguration(cmd.OutOrStdout(), cfg)
	return nil
}

func printConfiguration(w io.Writer, cfg *hypervisor.Configuration) {
	fmt.Fprintf(w, "CPUs:        %d\n", cfg.CPUCount)
	fmt.Fprintf(w, "Memory:      %s\n", units.BytesSize(float64(cfg.MemorySize)))
	fmt.Fprintf(w, "Boot loader: %s\n", hypervisor.Kind(cfg.BootLoader))
	switch b := cfg.BootLoader.(type) {
	case *hypervisor.LinuxBootLoader:
		fmt.Fprintf(w, "  Kernel:    %s\n", b.KernelPath)
		if b.InitrdPath != "" {
			fmt.Fprintf(w, "  Initrd:    %s\n", b.InitrdPath)
		}
		if b.CommandLine != "" {
			fmt.Fprintf(w, "  Cmdline:   %s\n", b.CommandLine)
		}
	case *hypervisor.EFIBootLoader:
		fmt.Fprintf(w, "  NVRAM:     %s\n", b.VariableStorePath)
	case *hypervisor.MacOSBootLoader:
		if b.ROMPath != "" {
			fmt.Fprintf(w, "  ROM:       %s\n", b.ROMPath)
		}
	}
	fmt.Fprintf(w, "Platform:    %s\n", hypervisor.PlatformKind(cfg.Platform))
	if cfg.DebugStub != nil {
		fmt.Fprintf(w, "Debug stub:  port %d\n", cfg.DebugStub.Port)
	}
}
