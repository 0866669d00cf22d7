package hypervisor

import "errors"

// Configuration errors
var (
	ErrInvalidCPUCount    = errors.New("hypervisor: CPU count must be at least 1")
	ErrInsufficientMemory = errors.New("hypervisor: memory must be at least 128MB")
	ErrMissingKernel      = errors.New("hypervisor: kernel path is required")
	ErrMissingBootLoader  = errors.New("hypervisor: boot loader is required")
	ErrMissingMacPlatform = errors.New("hypervisor: macOS boot loader requires a Mac platform")
)

// Backend errors
var (
	ErrUnsupportedPlatform  = errors.New("hypervisor: platform not supported")
	ErrCustomROMUnsupported = errors.New("hypervisor: custom ROM is not supported by this backend")
)
