// Package legacy holds configuration records written by the first schema
// version, before architecture and platform variants were stored.
package legacy

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Operating system names used by legacy boot loaders.
const (
	OSLinux = "Linux"
	OSMacOS = "macOS"
)

// Configuration is a legacy VM hardware record.
type Configuration struct {
	CPUCount int `mapstructure:"CPUCount"`

	// MemorySize is in bytes.
	MemorySize uint64 `mapstructure:"MemorySize"`

	BootLoader  *BootLoader  `mapstructure:"BootLoader"`
	MacPlatform *MacPlatform `mapstructure:"MacPlatform"`

	// MacRecoveryIPSWPath points at the restore image for macOS guests.
	MacRecoveryIPSWPath string `mapstructure:"MacRecoveryIpswURL"`
}

// BootLoader is a legacy boot loader description.
type BootLoader struct {
	OperatingSystem      string `mapstructure:"OperatingSystem"`
	LinuxKernelPath      string `mapstructure:"LinuxKernelURL"`
	LinuxInitialRamdisk  string `mapstructure:"LinuxInitialRamdiskURL"`
	LinuxCommandLine     string `mapstructure:"LinuxCommandLine"`
	EFIVariableStorePath string `mapstructure:"EfiVariableStorageURL"`
}

// MacPlatform is legacy macOS platform identity. Byte fields are base64 in
// text encodings and raw data in binary ones.
type MacPlatform struct {
	HardwareModel        []byte `mapstructure:"HardwareModel"`
	MachineIdentifier    []byte `mapstructure:"MachineIdentifier"`
	AuxiliaryStoragePath string `mapstructure:"AuxiliaryStorageURL"`
}

// ErrNotLegacy is returned when a record is in the current format.
var ErrNotLegacy = errors.New("legacy: record is not in the legacy format")

// currentKeys only appear in records written by the current schema.
var currentKeys = []string{
	"Architecture",
	"Boot",
	"GenericPlatform",
	"NeedDebug",
	"DebugPort",
	"UseCustomRom",
	"RomPath",
}

// IsLegacy reports whether raw looks like a legacy record. A record carrying
// any key of the current schema is not legacy, even when required keys are
// missing from it.
func IsLegacy(raw map[string]any) bool {
	for _, k := range currentKeys {
		if _, ok := raw[k]; ok {
			return false
		}
	}
	return true
}

// Decode reads a legacy record from a keyed map.
func Decode(raw map[string]any) (*Configuration, error) {
	if !IsLegacy(raw) {
		return nil, ErrNotLegacy
	}
	var cfg Configuration
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook:       Base64Hook(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("legacy: decode: %w", err)
	}
	return &cfg, nil
}
