//go:build darwin

package host

import (
	"strings"

	"github.com/coreos/go-semver/semver"
	"golang.org/x/sys/unix"
)

func productVersion() *semver.Version {
	s, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return nil
	}
	v, err := ParseProductVersion(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return v
}

// performanceCoreCount reads hw.perflevel0.physicalcpu, which only exists on
// hosts with heterogeneous cores.
func performanceCoreCount() int {
	n, err := unix.SysctlUint32("hw.perflevel0.physicalcpu")
	if err != nil {
		return 0
	}
	return int(n)
}
