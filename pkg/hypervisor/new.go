// Package hypervisor describes the resolved VM configuration handed to a
// hypervisor backend and translates it for macOS Virtualization.framework.
package hypervisor

import "runtime"

// SupportedPlatform returns true if the current platform can translate a
// Configuration into native hypervisor objects.
func SupportedPlatform() bool {
	return runtime.GOOS == "darwin"
}
