package platform

import "github.com/javanstorm/vzconf/pkg/hypervisor"

// Generic is identity for guests other than macOS.
type Generic struct {
	// MachineIdentifier is empty until the hypervisor has minted one.
	MachineIdentifier Blob `json:"MachineIdentifier,omitempty" yaml:"MachineIdentifier,omitempty" plist:"MachineIdentifier,omitempty" mapstructure:"MachineIdentifier"`
}

// NewGeneric returns a generic platform with no identifier yet.
func NewGeneric() *Generic {
	return &Generic{}
}

func (*Generic) variant() {}

// Resolve returns a *hypervisor.GenericPlatform.
func (g *Generic) Resolve() (hypervisor.Platform, error) {
	p := &hypervisor.GenericPlatform{}
	if len(g.MachineIdentifier) > 0 {
		p.MachineIdentifier = append([]byte(nil), g.MachineIdentifier...)
	}
	return p, nil
}
