// Package conv provides checked integer conversions for automaton state ids.
//
// State ids are 32-bit. These helpers narrow wider integers and panic on
// overflow, since running out of state ids is a programming error rather than
// a condition callers can recover from.
package conv

import "math"

// Uint64ToUint32 safely converts a uint64 to uint32.
// Panics if n > math.MaxUint32.
//
//go:inline
func Uint64ToUint32(n uint64) uint32 {
	if n > math.MaxUint32 {
		panic("integer overflow: uint64 value out of uint32 range")
	}
	return uint32(n)
}

// UintToUint32 safely converts a uint (a bitset index) to uint32.
// Panics if n > math.MaxUint32.
//
//go:inline
func UintToUint32(n uint) uint32 {
	if uint64(n) > math.MaxUint32 {
		panic("integer overflow: uint value out of uint32 range")
	}
	return uint32(n)
}
