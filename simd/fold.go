package simd

// FoldASCII copies src into dst, folding every ASCII uppercase byte
// [A-Z] to its lowercase counterpart [a-z]; all other bytes (including
// non-ASCII UTF-8 continuation/lead bytes) are copied unchanged. dst must
// be at least len(src) long.
func FoldASCII(dst, src []byte) {
	foldASCIIGeneric(dst, src)
}

// foldASCIIGeneric folds 8 bytes per iteration to keep the loop
// branch-predictable on the common (mostly-lowercase-or-non-letter) case,
// the same unrolling shape the rest of this package uses for its SWAR
// primitives, without relying on a packed-lane bit trick for the range
// test itself — a byte-by-byte comparison is already branch-cheap here
// since `b - 'A' <= 'Z' - 'A'` compiles to a single unsigned compare.
func foldASCIIGeneric(dst, src []byte) {
	n := len(src)
	idx := 0

	for idx+8 <= n {
		for i := 0; i < 8; i++ {
			b := src[idx+i]
			if b-'A' <= 'Z'-'A' {
				b += 'a' - 'A'
			}
			dst[idx+i] = b
		}
		idx += 8
	}

	for idx < n {
		b := src[idx]
		if b-'A' <= 'Z'-'A' {
			b += 'a' - 'A'
		}
		dst[idx] = b
		idx++
	}
}
