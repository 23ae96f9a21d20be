package simd

// IndexNewline returns the index of the first '\n' in buf, or -1 if buf
// contains no newline. It is Memchr specialized to the scan loop's single
// hottest needle.
func IndexNewline(buf []byte) int {
	return memchrGeneric(buf, '\n')
}
