package system

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/javanstorm/vzconf/internal/boot"
	"github.com/javanstorm/vzconf/internal/platform"
)

// Record is the persisted form of a System. Keys are stable and independent
// of the Go field names. A nil pointer is an absent key.
type Record struct {
	Architecture    *string           `json:"Architecture,omitempty" yaml:"Architecture,omitempty" plist:"Architecture,omitempty" mapstructure:"Architecture"`
	CPUCount        *int              `json:"CPUCount,omitempty" yaml:"CPUCount,omitempty" plist:"CPUCount,omitempty" mapstructure:"CPUCount"`
	MemorySize      *int              `json:"MemorySize,omitempty" yaml:"MemorySize,omitempty" plist:"MemorySize,omitempty" mapstructure:"MemorySize"`
	Boot            *boot.Boot        `json:"Boot,omitempty" yaml:"Boot,omitempty" plist:"Boot,omitempty" mapstructure:"Boot"`
	MacPlatform     *platform.Mac     `json:"MacPlatform,omitempty" yaml:"MacPlatform,omitempty" plist:"MacPlatform,omitempty" mapstructure:"MacPlatform"`
	GenericPlatform *platform.Generic `json:"GenericPlatform,omitempty" yaml:"GenericPlatform,omitempty" plist:"GenericPlatform,omitempty" mapstructure:"GenericPlatform"`
	NeedDebug       *bool             `json:"NeedDebug,omitempty" yaml:"NeedDebug,omitempty" plist:"NeedDebug,omitempty" mapstructure:"NeedDebug"`
	DebugPort       *int              `json:"DebugPort,omitempty" yaml:"DebugPort,omitempty" plist:"DebugPort,omitempty" mapstructure:"DebugPort"`
	UseCustomROM    *bool             `json:"UseCustomRom,omitempty" yaml:"UseCustomRom,omitempty" plist:"UseCustomRom,omitempty" mapstructure:"UseCustomRom"`
	ROMPath         *string           `json:"RomPath,omitempty" yaml:"RomPath,omitempty" plist:"RomPath,omitempty" mapstructure:"RomPath"`
}

// Encode returns the persisted form of s. Platform data is written only
// for the guest family it belongs to, which drops stale variants on save.
func (s System) Encode() Record {
	r := Record{
		Architecture: ptr(s.Architecture),
		CPUCount:     ptr(s.CPUCount),
		MemorySize:   ptr(s.MemorySize),
		Boot:         ptr(s.Boot),
		NeedDebug:    ptr(s.NeedDebug),
		DebugPort:    ptr(s.DebugPort),
		UseCustomROM: ptr(s.UseCustomROM),
	}
	if s.ROMPath != "" {
		r.ROMPath = ptr(s.ROMPath)
	}
	switch s.Boot.OperatingSystem {
	case boot.MacOS:
		r.MacPlatform = s.MacPlatform()
	case boot.Linux:
		r.GenericPlatform = s.GenericPlatform()
	}
	return r
}

// Decode reads a System from a keyed record such as one produced by
// unmarshalling JSON, YAML or a property list into a map.
func Decode(raw map[string]any) (System, error) {
	var r Record
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &r,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return System{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return System{}, fmt.Errorf("system: decode: %w", err)
	}
	return r.System()
}

// System converts a record, applying defaults to optional keys. Both
// platform variants may be present in old or foreign records; the one that
// matches the guest is kept and the other is left for Encode to drop.
func (r Record) System() (System, error) {
	switch {
	case r.Architecture == nil:
		return System{}, &MissingFieldError{Field: "Architecture"}
	case r.CPUCount == nil:
		return System{}, &MissingFieldError{Field: "CPUCount"}
	case r.MemorySize == nil:
		return System{}, &MissingFieldError{Field: "MemorySize"}
	case r.Boot == nil:
		return System{}, &MissingFieldError{Field: "Boot"}
	}

	s := System{
		Architecture: *r.Architecture,
		CPUCount:     *r.CPUCount,
		MemorySize:   *r.MemorySize,
		Boot:         *r.Boot,
		NeedDebug:    deref(r.NeedDebug, false),
		DebugPort:    deref(r.DebugPort, DefaultDebugPort),
		UseCustomROM: deref(r.UseCustomROM, false),
		ROMPath:      deref(r.ROMPath, ""),
	}

	switch {
	case r.GenericPlatform != nil && (r.MacPlatform == nil || s.Boot.OperatingSystem == boot.Linux):
		s.Platform = r.GenericPlatform
	case r.MacPlatform != nil:
		s.Platform = r.MacPlatform
	}
	return s, nil
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
