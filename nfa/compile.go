package nfa

import (
	"regexp/syntax"
)

// CompileOptions configures Compile's translation of pattern text into an
// NFA fragment.
type CompileOptions struct {
	// Literal, when set, treats pattern as a single literal string: every
	// byte is escaped before parsing, so regexp/syntax never sees a
	// metacharacter and the UTF-8 expander is bypassed for anything but
	// literal rune encoding. Matches the runtime "literal" flag.
	Literal bool
}

// CompiledPattern is the result of compiling one pattern: the NFA fragment
// plus the classification the literal prefilter (package prefilter)
// consumes.
type CompiledPattern struct {
	Fragment Fragment
	// PureLiteral is true when the pattern, after parsing, reduces to a
	// plain literal byte sequence with no anchors, classes, or repetition —
	// exactly the patterns prefilter.Build knows how to index.
	PureLiteral bool
	// Literal is the literal byte sequence when PureLiteral is true.
	Literal []byte
}

// Compile parses pattern with regexp/syntax (flag set syntax.Perl, minus
// the one-line-mode bit so bare ^ and $ always compile to the engine's
// line-based anchors rather than whole-text anchors — this engine has no
// concept of "whole input" distinct from "current line") and recursively
// walks the resulting AST, calling only the Builder's public constructors
// and the UTF-8 range expander.
//
// A pattern with no explicit leading ^ may match starting anywhere on the
// line, and one with no explicit trailing $ may match ending anywhere on
// the line — grep's usual "line contains a match" semantics. Since the
// node model's only match signal is an End node firing on the line's real
// trailing '\n' (§3), Compile implements this by wrapping the parsed
// fragment: an unanchored start gets a skip-prefix `Star(anyByteNotNL)`
// prepended, an unanchored end gets a skip-suffix appended, and the whole
// fragment always terminates in an End node — so "a" compiles as if it had
// been written ".*a.*$", "^a" as "^a.*$", "a$" as ".*a$", and "^a$"
// unchanged.
//
// regexp/syntax.Parse is the authoritative, well-tested parser for the
// Perl-flavored grammar this tool accepts; Compile never inspects pattern
// text itself except through the AST Parse returns.
func (b *Builder) Compile(pattern string, opts CompileOptions) (CompiledPattern, error) {
	src := pattern
	if opts.Literal {
		src = syntax.QuoteMeta(pattern)
	}
	re, err := syntax.Parse(src, syntax.Perl&^syntax.OneLine)
	if err != nil {
		return CompiledPattern{}, &CompileError{Pattern: pattern, Err: err}
	}
	re = re.Simplify()

	frag, err := b.compileNode(re)
	if err != nil {
		return CompiledPattern{}, &CompileError{Pattern: pattern, Err: err}
	}

	if !startsWithAnchor(re) {
		frag = b.Concat(b.Star(b.anyByteNotNL()), frag)
	}
	if !endsWithAnchor(re) {
		frag = b.Concat(frag, b.Star(b.anyByteNotNL()))
		frag = b.Concat(frag, b.End())
	}

	lit, pure := literalBytes(re)
	return CompiledPattern{Fragment: frag, PureLiteral: pure, Literal: lit}, nil
}

// anyByteNotNL matches any single byte other than '\n'. Used for the
// implicit skip-prefix/skip-suffix an unanchored pattern gets, it
// deliberately works at the raw byte level rather than through the UTF-8
// range expander: a skip region may straddle arbitrary, possibly
// non-UTF-8-valid bytes, and must still be skippable.
func (b *Builder) anyByteNotNL() Fragment {
	lo := b.Class(0, '\n'-1)
	hi := b.Class('\n'+1, 0xFF)
	return b.Alt(lo, hi)
}

// startsWithAnchor and endsWithAnchor report whether re's leading/trailing
// leaf (descending through OpConcat and OpCapture) is a line-start or
// line-end anchor. Patterns whose alternatives disagree on anchoring (e.g.
// "^a|b") are treated as unanchored at the disagreeing end; the core
// specification does not require per-branch anchor wrapping.
func startsWithAnchor(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpBeginLine, syntax.OpBeginText:
		return true
	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			return false
		}
		return startsWithAnchor(re.Sub[0])
	case syntax.OpCapture:
		return startsWithAnchor(re.Sub[0])
	default:
		return false
	}
}

func endsWithAnchor(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpEndLine, syntax.OpEndText:
		return true
	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			return false
		}
		return endsWithAnchor(re.Sub[len(re.Sub)-1])
	case syntax.OpCapture:
		return endsWithAnchor(re.Sub[0])
	default:
		return false
	}
}

func (b *Builder) compileNode(re *syntax.Regexp) (Fragment, error) {
	switch re.Op {
	case syntax.OpLiteral:
		return b.compileLiteral(re)

	case syntax.OpCharClass:
		ranges := make([]RuneRange, 0, len(re.Rune)/2)
		for i := 0; i+1 < len(re.Rune); i += 2 {
			ranges = append(ranges, RuneRange{Lo: re.Rune[i], Hi: re.Rune[i+1]})
		}
		return b.ExpandClass(ranges, false), nil

	case syntax.OpAnyCharNotNL:
		return b.ExpandClass([]RuneRange{{Lo: 0, Hi: '\n' - 1}, {Lo: '\n' + 1, Hi: MaxRune}}, false), nil

	case syntax.OpAnyChar:
		return b.ExpandClass([]RuneRange{{Lo: 0, Hi: MaxRune}}, false), nil

	case syntax.OpConcat:
		return b.compileConcat(re.Sub)

	case syntax.OpAlternate:
		return b.compileAlternate(re.Sub)

	case syntax.OpStar:
		inner, err := b.compileNode(re.Sub[0])
		if err != nil {
			return Fragment{}, err
		}
		return b.Star(inner), nil

	case syntax.OpPlus:
		// x+ is x followed by x*: no separate NFA primitive is needed.
		inner, err := b.compileNode(re.Sub[0])
		if err != nil {
			return Fragment{}, err
		}
		inner2, err := b.compileNode(re.Sub[0])
		if err != nil {
			return Fragment{}, err
		}
		return b.Concat(inner, b.Star(inner2)), nil

	case syntax.OpCapture:
		return b.compileNode(re.Sub[0])

	case syntax.OpBeginLine, syntax.OpBeginText:
		return b.Begin(), nil

	case syntax.OpEndLine, syntax.OpEndText:
		return b.End(), nil

	case syntax.OpEmptyMatch:
		return Fragment{}, ErrEmptyPattern

	default:
		return Fragment{}, ErrUnsupportedOp
	}
}

func (b *Builder) compileLiteral(re *syntax.Regexp) (Fragment, error) {
	if len(re.Rune) == 0 {
		return Fragment{}, ErrEmptyPattern
	}
	var frag Fragment
	for i, r := range re.Rune {
		var rf Fragment
		if re.Flags&syntax.FoldCase != 0 {
			rf = b.compileFoldCaseRune(r)
		} else {
			rf = b.ExpandClass([]RuneRange{{Lo: r, Hi: r}}, false)
		}
		if i == 0 {
			frag = rf
		} else {
			frag = b.Concat(frag, rf)
		}
	}
	return frag, nil
}

// compileFoldCaseRune builds a fragment matching either case of an ASCII
// letter (case folding only ever applies to ASCII per SPEC_FULL.md's
// runtime flag table — the "é" scenario in the testable properties
// explicitly keeps non-ASCII runes unaffected by case-fold). Non-letters
// and non-ASCII runes fall back to matching the rune exactly.
func (b *Builder) compileFoldCaseRune(r rune) Fragment {
	if r >= 'A' && r <= 'Z' {
		lower := r + ('a' - 'A')
		return b.ExpandClass([]RuneRange{{Lo: r, Hi: r}, {Lo: lower, Hi: lower}}, false)
	}
	if r >= 'a' && r <= 'z' {
		upper := r - ('a' - 'A')
		return b.ExpandClass([]RuneRange{{Lo: r, Hi: r}, {Lo: upper, Hi: upper}}, false)
	}
	return b.ExpandClass([]RuneRange{{Lo: r, Hi: r}}, false)
}

func (b *Builder) compileConcat(subs []*syntax.Regexp) (Fragment, error) {
	if len(subs) == 0 {
		return Fragment{}, ErrEmptyPattern
	}
	frag, err := b.compileNode(subs[0])
	if err != nil {
		return Fragment{}, err
	}
	for _, s := range subs[1:] {
		next, err := b.compileNode(s)
		if err != nil {
			return Fragment{}, err
		}
		frag = b.Concat(frag, next)
	}
	return frag, nil
}

func (b *Builder) compileAlternate(subs []*syntax.Regexp) (Fragment, error) {
	if len(subs) == 0 {
		return Fragment{}, ErrEmptyPattern
	}
	frag, err := b.compileNode(subs[0])
	if err != nil {
		return Fragment{}, err
	}
	for _, s := range subs[1:] {
		next, err := b.compileNode(s)
		if err != nil {
			return Fragment{}, err
		}
		frag = b.Alt(frag, next)
	}
	return frag, nil
}

// literalBytes reports whether re (after Simplify) is a pure literal — a
// single OpLiteral, or an OpConcat of nothing but OpLiteral children — with
// no anchors, classes, or repetition anywhere, and if so returns its UTF-8
// byte encoding. This classification is what the literal prefilter
// (package prefilter) uses to decide whether a pattern set qualifies for
// Aho-Corasick indexing.
func literalBytes(re *syntax.Regexp) ([]byte, bool) {
	switch re.Op {
	case syntax.OpLiteral:
		if re.Flags&syntax.FoldCase != 0 {
			return nil, false
		}
		var out []byte
		for _, r := range re.Rune {
			out = append(out, encodeRune(r)...)
		}
		return out, true
	case syntax.OpConcat:
		var out []byte
		for _, s := range re.Sub {
			b, ok := literalBytes(s)
			if !ok {
				return nil, false
			}
			out = append(out, b...)
		}
		return out, true
	default:
		return nil, false
	}
}
