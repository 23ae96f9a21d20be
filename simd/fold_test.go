package simd

import (
	"bytes"
	"testing"
)

func TestFoldASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"all_lower", "hello", "hello"},
		{"all_upper", "HELLO", "hello"},
		{"mixed", "HeLLo WoRLD", "hello world"},
		{"digits_and_punct", "ABC123!@#", "abc123!@#"},
		{"exactly_8", "ABCDEFGH", "abcdefgh"},
		{"more_than_8", "ABCDEFGHIJKLMNOP", "abcdefghijklmnop"},
		{"non_ascii_untouched", "CAF\xc3\x89", "caf\xc3\x89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.input)
			dst := make([]byte, len(src))
			FoldASCII(dst, src)
			if !bytes.Equal(dst, []byte(tt.want)) {
				t.Errorf("FoldASCII(%q) = %q, want %q", tt.input, dst, tt.want)
			}
		})
	}
}

func TestIndexNewline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", -1},
		{"no_newline", "hello world", -1},
		{"newline_at_start", "\nhello", 0},
		{"newline_at_end", "hello\n", 5},
		{"newline_in_middle", "hello\nworld", 5},
		{"multiple_newlines", "a\nb\nc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexNewline([]byte(tt.input)); got != tt.want {
				t.Errorf("IndexNewline(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
