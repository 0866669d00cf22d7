package system

import (
	"fmt"
	"strings"

	"github.com/javanstorm/vzconf/internal/boot"
	"github.com/javanstorm/vzconf/internal/host"
)

// ValidationError represents a configuration issue.
type ValidationError struct {
	Field   string
	Message string
	Fatal   bool // true = Build will fail, false = will be ignored
}

// Lint checks s against the host p and reports issues Build would either
// reject or silently ignore.
func Lint(s System, p host.Probe) []ValidationError {
	var errors []ValidationError

	if err := s.Validate(); err != nil {
		errors = append(errors, ValidationError{Field: "System", Message: err.Error(), Fatal: true})
	}

	if arch := p.Architecture(); s.Architecture != arch {
		errors = append(errors, ValidationError{
			Field:   "Architecture",
			Message: fmt.Sprintf("%s guests cannot run on a %s host", s.Architecture, arch),
			Fatal:   true,
		})
	}

	switch s.Boot.OperatingSystem {
	case boot.MacOS:
		if err := host.Check(p, host.MacGuest); err != nil {
			errors = append(errors, ValidationError{Field: "Boot", Message: err.Error(), Fatal: true})
		}
		if s.MacPlatform() == nil {
			errors = append(errors, ValidationError{Field: "MacPlatform", Message: "macOS guest has no Mac platform data", Fatal: true})
		} else if _, err := s.MacPlatform().Resolve(); err != nil {
			errors = append(errors, ValidationError{Field: "MacPlatform", Message: err.Error(), Fatal: true})
		}
		if s.GenericPlatform() != nil {
			errors = append(errors, ValidationError{Field: "GenericPlatform", Message: "generic platform data on a macOS guest will be dropped on save"})
		}
	case boot.Linux:
		if s.MacPlatform() != nil {
			errors = append(errors, ValidationError{Field: "MacPlatform", Message: "Mac platform data on a Linux guest will be dropped on save"})
		}
		if s.GenericPlatform() != nil {
			if err := host.Check(p, host.GenericPlatform); err != nil {
				errors = append(errors, ValidationError{Field: "GenericPlatform", Message: err.Error() + ", using host default"})
			}
		}
		if s.Boot.BootLoader() == nil {
			errors = append(errors, ValidationError{Field: "Boot", Message: "Linux guest has neither a kernel nor UEFI boot", Fatal: true})
		}
	default:
		if s.Platform != nil {
			errors = append(errors, ValidationError{Field: "Platform", Message: "platform data without an operating system will be dropped on save"})
		}
	}

	if s.UseCustomROM && s.ROMPath == "" {
		errors = append(errors, ValidationError{Field: "RomPath", Message: "custom ROM enabled but no ROM path set"})
	}
	if !s.UseCustomROM && s.ROMPath != "" {
		errors = append(errors, ValidationError{Field: "RomPath", Message: "ROM path is ignored unless custom ROM is enabled"})
	}
	if s.UseCustomROM && s.Boot.OperatingSystem != boot.MacOS {
		errors = append(errors, ValidationError{Field: "UseCustomRom", Message: "custom ROM only applies to macOS guests"})
	}
	if s.NeedDebug && (s.DebugPort < 1 || s.DebugPort > 65535) {
		errors = append(errors, ValidationError{Field: "DebugPort", Message: fmt.Sprintf("debug port %d out of range", s.DebugPort)})
	}

	return errors
}

// HasFatal reports whether any error is fatal.
func HasFatal(errors []ValidationError) bool {
	for _, e := range errors {
		if e.Fatal {
			return true
		}
	}
	return false
}

// FormatValidationErrors returns human-readable error summary.
func FormatValidationErrors(errors []ValidationError) string {
	if len(errors) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Configuration warnings:\n")
	for _, e := range errors {
		prefix := "Warning"
		if e.Fatal {
			prefix = "Error"
		}
		fmt.Fprintf(&b, "  %s [%s]: %s\n", prefix, e.Field, e.Message)
	}
	return b.String()
}
