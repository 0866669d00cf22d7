package system

import (
	"errors"
	"fmt"
)

// Resolution errors
var (
	ErrPlatformUnsupported  = errors.New("system: platform unsupported")
	ErrArchitectureMismatch = errors.New("system: architecture does not match host")
	ErrInvalidCPUCount      = errors.New("system: CPU count must not be negative")
	ErrInvalidMemorySize    = errors.New("system: memory size out of range")
)

// ErrMissingField matches every *MissingFieldError.
var ErrMissingField = errors.New("system: missing field")

// MissingFieldError is returned when a required key is absent from a record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("system: missing field %q", e.Field)
}

// Is lets errors.Is match ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
