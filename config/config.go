// Package config defines the runtime options shared between the CLI driver
// (cmd/greplex) and the engine/scanner packages it wires together.
package config

// Options enumerates every runtime flag cmd/greplex accepts. The first
// three affect the engine itself (SPEC_FULL.md §6's runtime-configuration
// table); the rest are formatter-only and never reach nfa, dfa/lazy, or
// scan.
type Options struct {
	// CaseFold folds ASCII [A-Z] to [a-z] before every Step, and compiles
	// patterns with ASCII case-insensitive literal matching (nfa.Compile
	// handles the latter internally via regexp/syntax's FoldCase flag).
	CaseFold bool
	// Inverse reports a line as a hit when the DFA does NOT match it,
	// rather than when it does.
	Inverse bool
	// Literal treats every pattern as a plain string: nfa.Compile escapes
	// all regex metacharacters before parsing.
	Literal bool

	// Count suppresses per-line output and reports only the number of
	// matching lines per file.
	Count bool
	// FilesWithMatches suppresses per-line output and reports only the
	// names of files containing at least one match.
	FilesWithMatches bool
	// FilesWithoutMatch suppresses per-line output and reports only the
	// names of files containing no match.
	FilesWithoutMatch bool
	// LineNumber prefixes each reported line with its 1-based line number.
	LineNumber bool
	// NoFilename suppresses the filename prefix that is otherwise printed
	// when more than one file is being scanned.
	NoFilename bool
	// Quiet suppresses all output; the driver still sets the process exit
	// status based on whether any match was found.
	Quiet bool
}
