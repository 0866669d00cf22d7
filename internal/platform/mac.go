package platform

import (
	"fmt"

	"github.com/javanstorm/vzconf/internal/legacy"
	"github.com/javanstorm/vzconf/pkg/hypervisor"
)

// Mac is macOS guest identity.
type Mac struct {
	HardwareModel        Blob   `json:"HardwareModel" yaml:"HardwareModel" plist:"HardwareModel" mapstructure:"HardwareModel"`
	MachineIdentifier    Blob   `json:"MachineIdentifier" yaml:"MachineIdentifier" plist:"MachineIdentifier" mapstructure:"MachineIdentifier"`
	AuxiliaryStoragePath string `json:"AuxiliaryStoragePath" yaml:"AuxiliaryStoragePath" plist:"AuxiliaryStoragePath" mapstructure:"AuxiliaryStoragePath"`
}

func (*Mac) variant() {}

// Resolve returns a *hypervisor.MacPlatform. All three parts are required.
func (m *Mac) Resolve() (hypervisor.Platform, error) {
	switch {
	case len(m.HardwareModel) == 0:
		return nil, fmt.Errorf("%w: missing hardware model", ErrIncomplete)
	case len(m.MachineIdentifier) == 0:
		return nil, fmt.Errorf("%w: missing machine identifier", ErrIncomplete)
	case m.AuxiliaryStoragePath == "":
		return nil, fmt.Errorf("%w: missing auxiliary storage", ErrIncomplete)
	}
	return &hypervisor.MacPlatform{
		HardwareModel:        append([]byte(nil), m.HardwareModel...),
		MachineIdentifier:    append([]byte(nil), m.MachineIdentifier...),
		AuxiliaryStoragePath: m.AuxiliaryStoragePath,
	}, nil
}

// MigrateMac converts legacy Mac platform data.
func MigrateMac(old *legacy.MacPlatform) *Mac {
	return &Mac{
		HardwareModel:        Blob(append([]byte(nil), old.HardwareModel...)),
		MachineIdentifier:    Blob(append([]byte(nil), old.MachineIdentifier...)),
		AuxiliaryStoragePath: old.AuxiliaryStoragePath,
	}
}
