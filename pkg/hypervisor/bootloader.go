package hypervisor

// BootLoader is one of *LinuxBootLoader, *EFIBootLoader or *MacOSBootLoader.
type BootLoader interface {
	bootLoader()
}

// LinuxBootLoader boots a Linux kernel directly.
type LinuxBootLoader struct {
	KernelPath  string
	InitrdPath  string
	CommandLine string
}

// EFIBootLoader boots through UEFI firmware.
type EFIBootLoader struct {
	// VariableStorePath is the NVRAM file. It is created when missing.
	VariableStorePath string
}

// MacOSBootLoader boots a macOS guest.
type MacOSBootLoader struct {
	// ROMPath overrides the firmware image when non-empty.
	ROMPath string
}

func (*LinuxBootLoader) bootLoader() {}
func (*EFIBootLoader) bootLoader()   {}
func (*MacOSBootLoader) bootLoader() {}

// Kind returns a short name for the boot loader, for display.
func Kind(b BootLoader) string {
	switch b.(type) {
	case *LinuxBootLoader:
		return "linux"
	case *EFIBootLoader:
		return "efi"
	case *MacOSBootLoader:
		return "macos"
	case nil:
		return "none"
	default:
		return "unknown"
	}
}
