// Command greplex is a line-oriented regular-expression scanner: compile a
// pattern into a DFA once, then stream each input file through it one byte
// at a time, reporting matching lines.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"

	"github.com/coregx/greplex/config"
	"github.com/coregx/greplex/dfa/lazy"
	"github.com/coregx/greplex/nfa"
	"github.com/coregx/greplex/prefilter"
)

func main() {
	opts, patterns, files := ParseFlags()

	builder := nfa.NewBuilder()
	compiled := make([]nfa.CompiledPattern, 0, len(patterns))
	var combined nfa.Fragment
	for i, pattern := range patterns {
		cp, err := builder.Compile(pattern, nfa.CompileOptions{Literal: opts.Literal})
		if err != nil {
			gologger.Fatal().Msgf("greplex: %s", err)
		}
		compiled = append(compiled, cp)
		if i == 0 {
			combined = cp.Fragment
		} else {
			combined = builder.Alt(combined, cp.Fragment)
		}
	}

	root := builder.Optimize(combined.Begin)
	engine := lazy.NewEngine(root, builder.Gen(), builder.NodeCount())

	pf, _ := prefilter.Build(compiled)

	anyMatch := false
	showFilename := len(files) > 1 && !opts.NoFilename

	for _, name := range files {
		matched, err := scanFile(name, showFilename, engine, pf, opts)
		if err != nil {
			gologger.Error().Msgf("greplex: %s: %s", name, err)
			continue
		}
		if matched {
			anyMatch = true
		}
	}

	if len(files) == 0 {
		matched, err := scanFile("-", false, engine, pf, opts)
		if err != nil {
			gologger.Fatal().Msgf("greplex: stdin: %s", err)
		}
		anyMatch = matched
	}

	if !anyMatch {
		os.Exit(1)
	}
}

func scanFile(name string, showFilename bool, engine *lazy.Engine, pf prefilter.Prefilter, opts config.Options) (bool, error) {
	r := os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return false, err
		}
		defer f.Close()
		r = f
	}

	fmtr := NewFormatter(os.Stdout, name, showFilename, opts)
	matched, err := Run(r, engine, pf, opts, fmtr)
	if err != nil {
		return matched, err
	}
	fmtr.Finish()
	return matched, nil
}

// printUsageHint is called by ParseFlags when no pattern is supplied.
func printUsageHint() {
	fmt.Fprintln(os.Stderr, "usage: greplex [options] -e PATTERN [FILE...]")
}
