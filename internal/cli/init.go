package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/javanstorm/vzconf/internal/boot"
	"github.com/javanstorm/vzconf/internal/platform"
	"github.com/javanstorm/vzconf/internal/system"
)

var initCmd = &cobra.Command{
	Use:   "init <vm>",
	Short: "Write a new VM configuration with default settings",
	Long: `Write a new VM configuration. <vm> is a file path (format from its
extension), a bundle directory, or a bare name created in the data directory.

CPU count 0 picks a count from the host topology every time the VM is resolved.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

var (
	initOS      string
	initCPUs    int
	initMemory  string
	initKernel  string
	initInitrd  string
	initCmdline string
	initUEFI    bool
	initForce   bool
)

func init() {
	initCmd.Flags().StringVar(&initOS, "os", "none", "Guest operating system (none, linux, macos)")
	initCmd.Flags().IntVarP(&initCPUs, "cpus", "c", 0, "Number of virtual CPUs (0 = match host)")
	initCmd.Flags().StringVarP(&initMemory, "memory", "m", "4GiB", "Guest memory, e.g. 2048MiB or 8GiB")
	initCmd.Flags().StringVar(&initKernel, "kernel", "", "Linux kernel path")
	initCmd.Flags().StringVar(&initInitrd, "initrd", "", "Linux initial ramdisk path")
	initCmd.Flags().StringVar(&initCmdline, "cmdline", "", "Linux kernel command line")
	initCmd.Flags().BoolVar(&initUEFI, "uefi", false, "Boot Linux through UEFI")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	file := openFile(args[0])
	if _, err := os.Stat(file.Path()); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", file.Path())
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	s, err := newSystem()
	if err != nil {
		return err
	}
	if err := file.Save(s); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", file.Path(), file.Format())
	return nil
}

// newSystem builds a configuration from the init flags.
func newSystem() (system.System, error) {
	s := system.New(hostProbe())

	guestOS, err := boot.ParseOperatingSystem(initOS)
	if err != nil {
		return s, err
	}
	s.Boot = boot.New(guestOS)

	if initCPUs < 0 {
		return s, fmt.Errorf("--cpus must not be negative")
	}
	s.CPUCount = initCPUs

	bytes, err := units.RAMInBytes(initMemory)
	if err != nil {
		return s, fmt.Errorf("parse --memory: %w", err)
	}
	s.MemorySize = int(bytes / units.MiB)
	if s.MemorySize < 1 {
		return s, fmt.Errorf("--memory must be at least 1MiB")
	}

	if guestOS == boot.Linux {
		s.Boot.LinuxKernelPath = initKernel
		s.Boot.LinuxInitialRamdiskPath = initInitrd
		s.Boot.LinuxCommandLine = initCmdline
		s.Boot.HasUEFIBoot = initUEFI
		s.Platform = platform.NewGeneric()
	}
	return s, nil
}
