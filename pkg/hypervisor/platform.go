package hypervisor

// Platform is one of *MacPlatform or *GenericPlatform.
type Platform interface {
	platform()
}

// MacPlatform identifies a macOS guest to the hypervisor.
type MacPlatform struct {
	HardwareModel        []byte
	MachineIdentifier    []byte
	AuxiliaryStoragePath string
}

// GenericPlatform identifies a non-macOS guest.
// A nil MachineIdentifier lets the backend mint a new one.
type GenericPlatform struct {
	MachineIdentifier []byte
}

func (*MacPlatform) platform()     {}
func (*GenericPlatform) platform() {}

// PlatformKind returns a short name for the platform, for display.
func PlatformKind(p Platform) string {
	switch p.(type) {
	case *MacPlatform:
		return "mac"
	case *GenericPlatform:
		return "generic"
	case nil:
		return "default"
	default:
		return "unknown"
	}
}
