package hypervisor

// minMemorySize is the smallest guest memory accepted, in bytes.
const minMemorySize = 128 * 1024 * 1024

// Configuration is a resolved, hypervisor-ready VM configuration.
// It is filled in once by a builder and treated as read-only afterwards.
type Configuration struct {
	// CPUCount is the number of virtual CPUs.
	CPUCount uint

	// MemorySize is the guest memory in bytes.
	MemorySize uint64

	// BootLoader starts the guest. Nil when the guest has no operating system yet.
	BootLoader BootLoader

	// Platform is the optional platform identity. Nil means the host default.
	Platform Platform

	// DebugStub enables a GDB stub when set.
	DebugStub *DebugStub
}

// DebugStub describes a guest debugger endpoint.
type DebugStub struct {
	Port int
}

// Validate performs basic validation of the configuration.
func (c *Configuration) Validate() error {
	if c.CPUCount < 1 {
		return ErrInvalidCPUCount
	}
	if c.MemorySize < minMemorySize {
		return ErrInsufficientMemory
	}
	if c.BootLoader == nil {
		return ErrMissingBootLoader
	}
	if l, ok := c.BootLoader.(*LinuxBootLoader); ok && l.KernelPath == "" {
		return ErrMissingKernel
	}
	if _, ok := c.BootLoader.(*MacOSBootLoader); ok {
		if _, ok := c.Platform.(*MacPlatform); !ok {
			return ErrMissingMacPlatform
		}
	}
	return nil
}
