// Package math provides fixed-width wrapping arithmetic on 32-bit and 64-bit
// unsigned words.
//
// Go's unsigned integer arithmetic is defined modulo 2^n and never traps, so
// the helpers here only exist to give rotations, word splitting and widening
// multiplication a single audited home.
package math

// Rotl32 rotates x left by k bits within a 32-bit word.
// k must be in [0, 32).
func Rotl32(x uint32, k int) uint32 {
	return (x << uint(k)) | (x >> uint(32-k))
}

// Rotl64 rotates x left by k bits within a 64-bit word.
// k must be in [0, 64).
func Rotl64(x uint64, k int) uint64 {
	return (x << uint(k)) | (x >> uint(64-k))
}

// Concat32 joins two 32-bit words into one 64-bit word, hi in the upper half.
func Concat32(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// Split64 returns the upper and lower halves of x.
func Split64(x uint64) (hi, lo uint32) {
	return uint32(x >> 32), uint32(x)
}

// Mul32 returns the full 64-bit product of x and y as two 32-bit halves.
func Mul32(x, y uint32) (hi, lo uint32) {
	return Split64(uint64(x) * uint64(y))
}

// Neg32 returns the two's-complement negation of x, i.e. 2^32 - x mod 2^32.
func Neg32(x uint32) uint32 {
	return -x
}
