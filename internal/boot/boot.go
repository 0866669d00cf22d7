// Package boot describes how a guest starts and resolves that description
// into a hypervisor boot loader.
package boot

import (
	"github.com/javanstorm/vzconf/internal/legacy"
	"github.com/javanstorm/vzconf/pkg/hypervisor"
)

// Boot is the boot descriptor of a VM.
type Boot struct {
	OperatingSystem OperatingSystem `json:"OperatingSystem" yaml:"OperatingSystem" plist:"OperatingSystem" mapstructure:"OperatingSystem"`

	LinuxKernelPath         string `json:"LinuxKernelPath,omitempty" yaml:"LinuxKernelPath,omitempty" plist:"LinuxKernelPath,omitempty" mapstructure:"LinuxKernelPath"`
	LinuxInitialRamdiskPath string `json:"LinuxInitialRamdiskPath,omitempty" yaml:"LinuxInitialRamdiskPath,omitempty" plist:"LinuxInitialRamdiskPath,omitempty" mapstructure:"LinuxInitialRamdiskPath"`
	LinuxCommandLine        string `json:"LinuxCommandLine,omitempty" yaml:"LinuxCommandLine,omitempty" plist:"LinuxCommandLine,omitempty" mapstructure:"LinuxCommandLine"`

	// HasUEFIBoot selects EFI firmware instead of direct kernel boot.
	HasUEFIBoot            bool   `json:"UEFIBoot" yaml:"UEFIBoot" plist:"UEFIBoot" mapstructure:"UEFIBoot"`
	EFIVariableStoragePath string `json:"EfiVariableStoragePath,omitempty" yaml:"EfiVariableStoragePath,omitempty" plist:"EfiVariableStoragePath,omitempty" mapstructure:"EfiVariableStoragePath"`

	// MacRecoveryIPSWPath is the restore image used to install macOS.
	MacRecoveryIPSWPath string `json:"MacRecoveryIpswPath,omitempty" yaml:"MacRecoveryIpswPath,omitempty" plist:"MacRecoveryIpswPath,omitempty" mapstructure:"MacRecoveryIpswPath"`
}

// New returns an empty boot descriptor for os.
func New(os OperatingSystem) Boot {
	return Boot{OperatingSystem: os}
}

// BootLoader resolves the descriptor. It returns nil when there is nothing
// to boot yet: no operating system, or a Linux guest with neither a kernel
// nor UEFI. hypervisor.Configuration.Validate rejects a nil boot loader.
func (b Boot) BootLoader() hypervisor.BootLoader {
	switch b.OperatingSystem {
	case MacOS:
		return &hypervisor.MacOSBootLoader{}
	case Linux:
		if b.HasUEFIBoot {
			return &hypervisor.EFIBootLoader{VariableStorePath: b.EFIVariableStoragePath}
		}
		if b.LinuxKernelPath == "" {
			return nil
		}
		return &hypervisor.LinuxBootLoader{
			KernelPath:  b.LinuxKernelPath,
			InitrdPath:  b.LinuxInitialRamdiskPath,
			CommandLine: b.LinuxCommandLine,
		}
	default:
		return nil
	}
}

// Migrate converts a legacy boot loader. Unknown operating systems migrate
// to None.
func Migrate(old *legacy.BootLoader) Boot {
	switch old.OperatingSystem {
	case legacy.OSMacOS:
		return New(MacOS)
	case legacy.OSLinux:
		b := New(Linux)
		b.LinuxKernelPath = old.LinuxKernelPath
		b.LinuxInitialRamdiskPath = old.LinuxInitialRamdisk
		b.LinuxCommandLine = old.LinuxCommandLine
		if old.LinuxKernelPath == "" && old.EFIVariableStorePath != "" {
			b.HasUEFIBoot = true
			b.EFIVariableStoragePath = old.EFIVariableStorePath
		}
		return b
	default:
		return New(None)
	}
}
