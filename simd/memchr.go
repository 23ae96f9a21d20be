// Package simd provides accelerated byte-scanning primitives for the scan
// loop and prefilter: finding a needle byte, an ASCII character class, or a
// line terminator in a buffer faster than a byte-by-byte loop. Every
// primitive is pure Go, built on the SWAR (SIMD Within A Register) technique
// of treating a uint64 as eight lanes and testing all eight with one
// bitwise operation; there is no architecture-specific path.
package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Memchr uses the SWAR technique, processing 8 bytes at a time via uint64
// bitwise operations.
//
// Performance characteristics:
//   - Small inputs (< 8 bytes): byte-by-byte comparison
//   - Medium/large inputs: 2-5x faster than naive byte-by-byte
//
// See memchrGeneric for implementation details.
func Memchr(haystack []byte, needle byte) int {
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or needle2
// in haystack, or -1 if neither is present.
//
// Memchr2/Memchr3 use the SWAR technique to check
// both needles in parallel within 8-byte chunks.
//
// The function returns the position of whichever needle appears first in haystack.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of needle1, needle2, or needle3
// in haystack, or -1 if none are present.
//
// Memchr2/Memchr3 use the SWAR technique to check
// all three needles in parallel within 8-byte chunks.
//
// The function returns the position of whichever needle appears first in haystack.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchr3Generic(haystack, needle1, needle2, needle3)
}
