//go:build darwin

package hypervisor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Code-Hex/vz/v3"
	"github.com/sirupsen/logrus"
)

// NewVZConfiguration translates cfg into a validated Virtualization.framework
// configuration. Devices are left to the caller.
func NewVZConfiguration(cfg *Configuration) (*vz.VirtualMachineConfiguration, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bootLoader, err := newVZBootLoader(cfg.BootLoader)
	if err != nil {
		return nil, fmt.Errorf("vz: create boot loader: %w", err)
	}

	vmCfg, err := vz.NewVirtualMachineConfiguration(bootLoader, cfg.CPUCount, cfg.MemorySize)
	if err != nil {
		return nil, fmt.Errorf("vz: create VM config: %w", err)
	}

	if cfg.Platform != nil {
		platform, err := newVZPlatform(cfg.Platform)
		if err != nil {
			return nil, fmt.Errorf("vz: create platform config: %w", err)
		}
		vmCfg.SetPlatformVirtualMachineConfiguration(platform)
	}

	if cfg.DebugStub != nil {
		logrus.WithField("port", cfg.DebugStub.Port).Warn("vz: debug stub requested but not exposed by Virtualization.framework, ignoring")
	}

	ok, err := vmCfg.Validate()
	if !ok || err != nil {
		return nil, fmt.Errorf("vz: invalid configuration: %w", err)
	}
	return vmCfg, nil
}

func newVZBootLoader(b BootLoader) (vz.BootLoader, error) {
	switch b := b.(type) {
	case *LinuxBootLoader:
		var opts []vz.LinuxBootLoaderOption
		if b.CommandLine != "" {
			logrus.Debugf("Using kernel command line %q", b.CommandLine)
			opts = append(opts, vz.WithCommandLine(b.CommandLine))
		}
		if b.InitrdPath != "" {
			logrus.Debugf("Using initrd %q", b.InitrdPath)
			opts = append(opts, vz.WithInitrd(b.InitrdPath))
		}
		logrus.Debugf("Using Linux Boot Loader with kernel %q", b.KernelPath)
		return vz.NewLinuxBootLoader(b.KernelPath, opts...)
	case *EFIBootLoader:
		store, err := efiVariableStore(b.VariableStorePath)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("Using EFI Boot Loader")
		return vz.NewEFIBootLoader(vz.WithEFIVariableStore(store))
	case *MacOSBootLoader:
		if b.ROMPath != "" {
			return nil, ErrCustomROMUnsupported
		}
		return newVZMacOSBootLoader()
	default:
		return nil, fmt.Errorf("unknown boot loader %T", b)
	}
}

func efiVariableStore(path string) (*vz.EFIVariableStore, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return vz.NewEFIVariableStore(path, vz.WithCreatingEFIVariableStore())
	}
	return vz.NewEFIVariableStore(path)
}

func newVZPlatform(p Platform) (vz.PlatformConfiguration, error) {
	switch p := p.(type) {
	case *GenericPlatform:
		var id *vz.GenericMachineIdentifier
		var err error
		if len(p.MachineIdentifier) == 0 {
			id, err = vz.NewGenericMachineIdentifier()
		} else {
			id, err = vz.NewGenericMachineIdentifierWithData(p.MachineIdentifier)
		}
		if err != nil {
			return nil, fmt.Errorf("machine identifier: %w", err)
		}
		return vz.NewGenericPlatformConfiguration(vz.WithGenericMachineIdentifier(id))
	case *MacPlatform:
		return newVZMacPlatform(p)
	default:
		return nil, fmt.Errorf("unknown platform %T", p)
	}
}

// Verify checks cfg against Virtualization.framework without keeping the result.
func Verify(cfg *Configuration) error {
	_, err := NewVZConfiguration(cfg)
	return err
}
