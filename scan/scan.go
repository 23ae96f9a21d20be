// Package scan implements the line-oriented scan loop: the rolling-buffer
// byte reader that drives a dfa/lazy.Engine one byte at a time and reports
// per-line hits to a caller-supplied callback.
package scan

import (
	"context"
	"io"

	"github.com/coregx/greplex/dfa/lazy"
	"github.com/coregx/greplex/internal/conv"
	"github.com/coregx/greplex/prefilter"
	"github.com/coregx/greplex/simd"
)

// PrefixSize is how much of the current, still-unterminated line is kept
// when the read buffer drains, so a line far longer than one read still
// scans correctly — only its trailing window survives a shift.
const PrefixSize = 16 * 1024

// ReadSize is how much fresh data one refill pulls from the source.
const ReadSize = 16 * 1024

// Options configures the engine-visible half of the runtime configuration
// table (SPEC_FULL.md §6); the formatter-only flags live in config.Options
// and never reach this package.
type Options struct {
	// CaseFold folds ASCII [A-Z] to [a-z] on every byte before it is
	// stepped through the DFA.
	CaseFold bool
	// Inverse reports a line as a hit when the DFA state reached at its
	// terminating newline does NOT have Match set.
	Inverse bool
}

// Hit is one reported line: its content (excluding the trailing newline),
// its 1-based line number, and whether it was produced by the synthetic
// end-of-file newline fixup rather than a real '\n' byte in the input.
type Hit struct {
	Line   []byte
	Lineno int64
	EOF    bool
}

// HitFunc is called once per matching line. Returning false stops the scan
// early (the caller has seen enough — e.g. a future "-m 1" style flag).
type HitFunc func(Hit) (cont bool)

// state names the scanner's current phase, mirroring SPEC_FULL.md §4.8's
// state machine. It exists for documentation and assertions; Scan's control
// flow does not switch on it directly.
type scanState uint8

const (
	stateScanning scanState = iota
	stateAtLineEnd
	stateFlushing
	stateDraining
	stateHalted
)

// Scanner drives one file's scan over a shared *lazy.Engine. A Scanner is
// not safe for concurrent use, and at most one Scanner may be active over a
// given Engine at a time (SPEC_FULL.md §5).
type Scanner struct {
	engine *lazy.Engine
	pf     prefilter.Prefilter
	opts   Options

	r   io.Reader
	buf []byte
	pos int
	end int
	bol int

	st     *lazy.State
	lineno int64
	eof    bool
	phase  scanState
}

// NewScanner returns a Scanner reading from r and driving engine. pf may be
// nil (no prefilter qualified for the active pattern set — see
// prefilter.Build).
func NewScanner(r io.Reader, engine *lazy.Engine, pf prefilter.Prefilter, opts Options) *Scanner {
	return &Scanner{
		engine: engine,
		pf:     pf,
		opts:   opts,
		r:      r,
		buf:    make([]byte, PrefixSize+ReadSize),
		st:     engine.Seed(),
		phase:  stateScanning,
	}
}

// Scan runs the scan loop to completion (or until fn returns false),
// calling fn once per matching line. It is ScanContext with
// context.Background().
func (s *Scanner) Scan(fn HitFunc) error {
	return s.ScanContext(context.Background(), fn)
}

// ScanContext runs the scan loop, checking ctx.Err() once per line boundary
// (SPEC_FULL.md §5) so the caller can cancel a scan between lines without
// the hot per-byte loop paying for it.
func (s *Scanner) ScanContext(ctx context.Context, fn HitFunc) error {
	for {
		if s.pos >= s.end {
			if s.eof {
				return s.finish(fn)
			}
			s.phase = stateDraining
			if err := s.refill(); err != nil {
				if err == io.EOF {
					s.eof = true
					continue
				}
				return err
			}
			s.phase = stateScanning
			continue
		}

		b := s.buf[s.pos]
		step := b
		if s.opts.CaseFold && step-'A' <= 'Z'-'A' {
			step += 'a' - 'A'
		}
		s.st = s.engine.Step(s.st, step)
		s.pos++

		if b != '\n' {
			continue
		}

		s.phase = stateAtLineEnd
		s.lineno++
		if err := ctx.Err(); err != nil {
			return err
		}
		if cont := s.emit(s.buf[s.bol:s.pos-1], false, fn); !cont {
			s.phase = stateHalted
			return nil
		}
		s.st = s.engine.Restart(s.st)
		s.bol = s.pos
		s.phase = stateScanning
	}
}

// emit decides whether the just-completed line is a hit (consulting the
// prefilter as a sound-but-redundant early-exit check — see prefilter.Build's
// soundness guarantee: a real hit can never fail Candidate, so gating on it
// here never drops a true match) and, if so, calls fn.
func (s *Scanner) emit(line []byte, eof bool, fn HitFunc) bool {
	hit := s.st.Match != s.opts.Inverse
	if !hit {
		return true
	}
	if s.pf != nil && !s.pf.Candidate(line) {
		return true
	}
	return fn(Hit{Line: line, Lineno: s.lineno, EOF: eof})
}

// finish handles the tail of the buffer once the source is exhausted: an
// unterminated, non-empty final line gets a synthetic '\n' stepped through
// the DFA so its anchor/match logic fires exactly as it would for a
// properly terminated line, and the resulting Hit (if any) is marked EOF so
// the formatter can apply the presentational trim Open Question 1 resolves.
func (s *Scanner) finish(fn HitFunc) error {
	if s.bol >= s.pos {
		s.phase = stateHalted
		return nil
	}
	s.phase = stateFlushing
	s.st = s.engine.Step(s.st, '\n')
	s.lineno++
	s.emit(s.buf[s.bol:s.pos], true, fn)
	s.phase = stateHalted
	return nil
}

// refill shifts the tail of the current, still-open line to the front of
// the buffer (capped at PrefixSize so an arbitrarily long line only ever
// carries its last window forward) and reads up to ReadSize fresh bytes
// after it.
func (s *Scanner) refill() error {
	carryStart := s.bol
	if s.end-carryStart > PrefixSize {
		carryStart = s.end - PrefixSize
	}
	carryLen := conv.IntToUint32(s.end - carryStart)
	copy(s.buf[:carryLen], s.buf[carryStart:s.end])

	s.pos -= carryStart
	s.bol -= carryStart
	if s.bol < 0 {
		s.bol = 0
	}
	s.end = int(carryLen)

	n, err := s.r.Read(s.buf[s.end : s.end+ReadSize])
	s.end += n
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return err
	}
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

// IndexNewline exposes simd's accelerated newline search for callers (e.g.
// a future streaming formatter) that want to pre-scan a buffer without
// driving the DFA; the scan loop itself drives the DFA byte-by-byte and
// does not call this directly, since line boundaries here are a side effect
// of DFA stepping, not a search target.
func IndexNewline(buf []byte) int {
	return simd.IndexNewline(buf)
}
