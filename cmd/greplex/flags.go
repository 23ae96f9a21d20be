package main

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"github.com/coregx/greplex/config"
)

// ParseFlags parses the command line with github.com/projectdiscovery/
// goflags (learned from the projectdiscovery-alterx example repo's
// internal/runner.ParseFlags, the grounding source for this CreateGroup/
// VarP shape) and returns the engine-facing options, the pattern list, and
// the file list to scan.
func ParseFlags() (config.Options, []string, []string) {
	var opts config.Options
	var patterns, files goflags.StringSlice

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Fast line-oriented regular-expression scanner.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&patterns, "regexp", "e", nil, "pattern to search for (comma-separated, file, may be repeated)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&files, "file", "f", nil, "files to search (stdin if none given)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("matching", "Matching",
		flagSet.BoolVarP(&opts.CaseFold, "ignore-case", "i", false, "ignore case when matching"),
		flagSet.BoolVarP(&opts.Inverse, "invert-match", "v", false, "select non-matching lines"),
		flagSet.BoolVarP(&opts.Literal, "fixed-strings", "F", false, "treat the pattern as a literal string, not a regular expression"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Count, "count", "c", false, "print only a count of matching lines per file"),
		flagSet.BoolVarP(&opts.FilesWithMatches, "files-with-matches", "l", false, "print only names of files containing a match"),
		flagSet.BoolVarP(&opts.FilesWithoutMatch, "files-without-match", "L", false, "print only names of files containing no match"),
		flagSet.BoolVarP(&opts.LineNumber, "line-number", "n", false, "prefix each matching line with its line number"),
		flagSet.BoolVar(&opts.NoFilename, "no-filename", false, "never print filename prefixes"),
		flagSet.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress all output; exit status only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("greplex: could not read flags: %s", err)
	}

	if len(patterns) == 0 {
		printUsageHint()
		os.Exit(2)
	}

	return opts, []string(patterns), []string(files)
}
