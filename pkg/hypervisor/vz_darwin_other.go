//go:build darwin && !arm64

package hypervisor

import "github.com/Code-Hex/vz/v3"

func newVZMacOSBootLoader() (vz.BootLoader, error) {
	return nil, ErrUnsupportedPlatform
}

func newVZMacPlatform(*MacPlatform) (vz.PlatformConfiguration, error) {
	return nil, ErrUnsupportedPlatform
}
