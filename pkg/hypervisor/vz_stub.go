//go:build !darwin

package hypervisor

// Verify returns ErrUnsupportedPlatform on hosts without Virtualization.framework.
func Verify(*Configuration) error {
	return ErrUnsupportedPlatform
}
