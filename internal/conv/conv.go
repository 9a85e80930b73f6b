// Package conv provides checked integer conversion helpers for the pattern
// engine.
//
// The engine stores term offsets and capture lengths as uint32 and replicates
// literal runs by their repeat count at compile time. These helpers perform
// bounds checking before narrowing or multiplying and panic on overflow, since
// overflow indicates a pattern beyond the engine's internal limits rather than
// a runtime condition.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// MulInt multiplies two non-negative ints, panicking on overflow.
// Used when replicating a literal run by its repeat count.
func MulInt(a, b int) int {
	if a < 0 || b < 0 {
		panic("integer overflow: negative operand")
	}
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/a != b {
		panic("integer overflow: repeat expansion out of int range")
	}
	return p
}
