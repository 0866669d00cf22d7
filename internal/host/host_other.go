//go:build !darwin

package host

import "github.com/coreos/go-semver/semver"

func productVersion() *semver.Version {
	return nil
}

func performanceCoreCount() int {
	return 0
}
