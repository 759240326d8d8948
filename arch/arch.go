// Package arch provides architecture constants and types.
package arch

import (
	"github.com/kformaniak/emu8086/set"
)

// Architecture represents a target CPU architecture.
type Architecture string

// Supported CPU architectures.
const (
	// X86 represents the Intel 8086/8088 processor used in:
	// - IBM PC and PC/XT
	// - early MS-DOS compatible systems
	X86 Architecture = "x86"
)

// allSupportedArchitectures defines the single source of truth for supported architectures.
// Adding a new architecture requires updating only this slice.
var allSupportedArchitectures = []Architecture{
	X86,
}

// supportedArchitecturesSet provides O(1) lookup performance for IsValid().
var supportedArchitecturesSet = set.NewFromSlice(allSupportedArchitectures)

// String returns the string representation of the architecture.
func (a Architecture) String() string {
	return string(a)
}

// IsValid returns true if the architecture is supported.
func (a Architecture) IsValid() bool {
	return supportedArchitecturesSet.Contains(a)
}

// FromString creates an Architecture from a string.
// Returns the architecture and true if valid, or empty Architecture and false if invalid.
func FromString(s string) (Architecture, bool) {
	a := Architecture(s)
	if a.IsValid() {
		return a, true
	}
	return "", false
}

// SupportedArchitectures returns a slice of all supported architectures.
func SupportedArchitectures() []Architecture {
	result := make([]Architecture, len(allSupportedArchitectures))
	copy(result, allSupportedArchitectures)
	return result
}
