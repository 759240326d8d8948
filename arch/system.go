package arch

import (
	"strings"

	"github.com/kformaniak/emu8086/set"
)

// System represents a complete retro computing system.
// This is separate from CPU architecture and handles system-specific
// concerns like the initial register state a program expects on entry.
type System string

// Supported systems.
const (
	// DOS represents MS-DOS and compatible systems: CS=DS=ES=0x1000,
	// SS=0x2000, SP=0xFFFE, IP=0x0100, interrupts enabled.
	DOS System = "dos"

	// BIOS represents the power-on/reset state of a bare 8086: CS=0xF000,
	// DS=ES=SS=0x0000, SP=0xFFFE, IP=0xFFF0, interrupts disabled.
	BIOS System = "bios"

	// Generic represents a generic system without specific hardware quirks,
	// leaving every register at its architectural reset value.
	Generic System = "generic"
)

// allSupportedSystems defines the single source of truth for supported systems.
// Adding a new system requires updating only this slice.
var allSupportedSystems = []System{
	DOS,
	BIOS,
	Generic,
}

// supportedSystemsSet provides O(1) lookup performance for system validation.
var supportedSystemsSet = set.NewFromSlice(allSupportedSystems)

// String returns the string representation of the system.
func (s System) String() string {
	return string(s)
}

// IsValid returns true if the system is supported.
func (s System) IsValid() bool {
	return supportedSystemsSet.Contains(s)
}

// SystemFromString creates a System from a string.
// Returns the system and true if valid, or empty System and false if invalid.
// The comparison is case-insensitive.
func SystemFromString(s string) (System, bool) {
	sys := System(strings.ToLower(s))
	if sys.IsValid() {
		return sys, true
	}
	return "", false
}

// SupportedSystems returns a slice of all supported systems.
func SupportedSystems() []System {
	result := make([]System, len(allSupportedSystems))
	copy(result, allSupportedSystems)
	return result
}
