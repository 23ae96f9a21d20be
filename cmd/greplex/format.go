package main

import (
	"fmt"
	"io"

	"github.com/coregx/greplex/config"
	"github.com/coregx/greplex/scan"
)

// Formatter renders scan.Hit values per config.Options. It is an external
// collaborator of the scan loop (SPEC_FULL.md §4.10): the engine and
// scanner never decide presentation, only Formatter does. It also owns the
// EOF/filename-coupling Open Question's resolution — unlike the plan9-grep
// lineage this is modeled on, a Hit's EOF flag never interacts with
// filename labeling; Formatter treats them as entirely independent axes.
type Formatter struct {
	w            io.Writer
	name         string
	showFilename bool
	opts         config.Options

	count   int64
	matched bool
}

// NewFormatter returns a Formatter writing to w for the file named name.
func NewFormatter(w io.Writer, name string, showFilename bool, opts config.Options) *Formatter {
	return &Formatter{w: w, name: name, showFilename: showFilename, opts: opts}
}

// Report is the scan.HitFunc Run wires to the scanner. Its return value
// tells the scan loop whether to keep scanning the rest of the file: modes
// that only need to know "matched at least once" (files-with-matches,
// files-without-match, quiet) stop early; count mode must see every line.
func (f *Formatter) Report(h scan.Hit) bool {
	f.matched = true

	switch {
	case f.opts.FilesWithMatches, f.opts.FilesWithoutMatch, f.opts.Quiet:
		return false
	case f.opts.Count:
		f.count++
		return true
	default:
		f.printLine(h)
		return true
	}
}

func (f *Formatter) printLine(h scan.Hit) {
	if f.showFilename {
		fmt.Fprintf(f.w, "%s:", f.name)
	}
	if f.opts.LineNumber {
		fmt.Fprintf(f.w, "%d:", h.Lineno)
	}
	f.w.Write(h.Line)
	fmt.Fprintln(f.w)
}

// Finish emits whatever summary a file's scan defers until its last line is
// known: the filename (files-with-matches/files-without-match) or the
// count (count mode). Quiet and per-line modes have nothing left to print.
func (f *Formatter) Finish() {
	switch {
	case f.opts.FilesWithMatches:
		if f.matched {
			fmt.Fprintln(f.w, f.name)
		}
	case f.opts.FilesWithoutMatch:
		if !f.matched {
			fmt.Fprintln(f.w, f.name)
		}
	case f.opts.Count:
		if f.showFilename {
			fmt.Fprintf(f.w, "%s:", f.name)
		}
		fmt.Fprintln(f.w, f.count)
	}
}
