// Package lazy implements the lazy NFA→DFA subset construction: DFA states
// are discovered and memoized on demand as the scan loop steps through
// input bytes, rather than built up front.
package lazy

import "github.com/coregx/greplex/nfa"

// State represents one DFA state: the sorted, immutable set of NFA nodes
// the scanner could simultaneously occupy, a match-flag, a 256-wide
// transition cache (filled in lazily, one slot per byte-miss, and never
// cleared once set), and the two links that place this State in the
// Engine's binary search tree. All fields are unexported: everything a
// caller needs is State.Match and Engine.Step.
type State struct {
	nodes []*nfa.Node
	Match bool

	next [256]*State

	left, right *State
}
