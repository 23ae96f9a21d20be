package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/greplex/literal"
	"github.com/coregx/greplex/nfa"
)

// MinLiteralsForPrefilter is the smallest pure-literal pattern count at
// which an Aho-Corasick automaton pays for its own construction cost over
// the scalar/Teddy strategies selectPrefilter already picks for 1-3
// literals. Below this count Build falls through to selectPrefilter.
const MinLiteralsForPrefilter = 4

// Build constructs a Prefilter for a compiled pattern set, or reports
// false when none of the pack's literal-based strategies applies.
//
// Build only fires when every supplied pattern classified as a pure
// literal during compilation (nfa.CompiledPattern.PureLiteral — see
// SPEC_FULL.md §4.4); a single non-literal pattern (a character class, an
// alternation with variable-length arms, …) disqualifies the whole set,
// since the prefilter can otherwise only ever produce false positives and
// never false negatives, and a mix of literal and non-literal patterns
// cannot be sound to skip on. When it does qualify:
//   - 4 or more literals: one github.com/coregx/ahocorasick automaton over
//     all literal bodies, mirroring the teacher's meta package strategy
//     selection for large literal alternations.
//   - 1-3 literals: selectPrefilter's existing single-byte (Memchr),
//     single-substring (Memmem), or small-alternation (Teddy) strategy.
//
// The returned Prefilter, when non-nil, may only ever report false
// positives: the DFA result is always authoritative (SPEC_FULL.md §4.7).
func Build(patterns []nfa.CompiledPattern) (Prefilter, bool) {
	if len(patterns) == 0 {
		return nil, false
	}

	lits := make([]literal.Literal, 0, len(patterns))
	for _, p := range patterns {
		if !p.PureLiteral || len(p.Literal) == 0 {
			return nil, false
		}
		lits = append(lits, literal.NewLiteral(p.Literal, true))
	}

	if len(lits) >= MinLiteralsForPrefilter {
		builder := ahocorasick.NewBuilder()
		for _, lit := range lits {
			builder.AddPattern(lit.Bytes)
		}
		auto, err := builder.Build()
		if err != nil {
			return nil, false
		}
		return &ahoCorasickPrefilter{auto: auto, patternCount: len(lits)}, true
	}

	seq := literal.NewSeq(lits...)
	seq.Minimize()
	if pf := selectPrefilter(seq, nil); pf != nil {
		return pf, true
	}
	return nil, false
}

// ahoCorasickPrefilter wraps an Aho-Corasick automaton as a Prefilter for
// pattern sets with many pure-literal alternatives.
type ahoCorasickPrefilter struct {
	auto         *ahocorasick.Automaton
	patternCount int
}

func (a *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := a.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete is false: distinct literals have distinct lengths, so the
// caller must still look at which literal matched (via the DFA) to know
// the match bounds.
func (a *ahoCorasickPrefilter) IsComplete() bool { return false }

func (a *ahoCorasickPrefilter) LiteralLen() int { return 0 }

func (a *ahoCorasickPrefilter) HeapBytes() int { return a.patternCount * 64 }

func (a *ahoCorasickPrefilter) Candidate(line []byte) bool { return a.auto.IsMatch(line) }
