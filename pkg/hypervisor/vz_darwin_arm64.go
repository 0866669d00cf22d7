//go:build darwin && arm64

package hypervisor

import (
	"fmt"

	"github.com/Code-Hex/vz/v3"
)

func newVZMacOSBootLoader() (vz.BootLoader, error) {
	return vz.NewMacOSBootLoader()
}

func newVZMacPlatform(p *MacPlatform) (vz.PlatformConfiguration, error) {
	hw, err := vz.NewMacHardwareModelWithData(p.HardwareModel)
	if err != nil {
		return nil, fmt.Errorf("hardware model: %w", err)
	}
	if !hw.Supported() {
		return nil, fmt.Errorf("hardware model is not supported on this host")
	}
	id, err := vz.NewMacMachineIdentifierWithData(p.MachineIdentifier)
	if err != nil {
		return nil, fmt.Errorf("machine identifier: %w", err)
	}
	aux, err := vz.NewMacAuxiliaryStorage(p.AuxiliaryStoragePath)
	if err != nil {
		return nil, fmt.Errorf("auxiliary storage: %w", err)
	}
	return vz.NewMacPlatformConfiguration(
		vz.WithMacHardwareModel(hw),
		vz.WithMacMachineIdentifier(id),
		vz.WithMacAuxiliaryStorage(aux),
	)
}
