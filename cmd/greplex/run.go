package main

import (
	"io"

	"github.com/coregx/greplex/config"
	"github.com/coregx/greplex/dfa/lazy"
	"github.com/coregx/greplex/prefilter"
	"github.com/coregx/greplex/scan"
)

// Run scans r with engine and reports hits to fmtr. It returns whether at
// least one line matched, for the driver's process exit status.
func Run(r io.Reader, engine *lazy.Engine, pf prefilter.Prefilter, opts config.Options, fmtr *Formatter) (bool, error) {
	sc := scan.NewScanner(r, engine, pf, scan.Options{
		CaseFold: opts.CaseFold,
		Inverse:  opts.Inverse,
	})

	matched := false
	err := sc.Scan(func(h scan.Hit) bool {
		matched = true
		return fmtr.Report(h)
	})
	return matched, err
}
