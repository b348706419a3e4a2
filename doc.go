// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package gong - flexible, getopt inspired command line argument parser.

It operates on any given slice of strings (conventionally os.Args[1:]) and
classifies every token against a described set of available options and,
optionally, a tree of commands, producing an ordered analysis that can be
iterated or queried.

# Usage

The following is a basic example:

	opts := gong.NewOptionSetEx()
	opts.AddPair('h', "help", false)
	opts.AddLong("output", true)

	parser := gong.NewParser(opts.AsFixed(), nil)

	analysis := parser.Parse(os.Args[1:])
	if analysis.HasProblems() {
		// ... inspect analysis.Items for details
	}
	if analysis.OptionUsed(gong.FindPair('h', "help")) {
		// ... print help
	}
	if value, ok := analysis.LastValue(gong.FindLong("output")); ok {
		// ... use value
	}

Alternatively build the description statically:

	var opts = gong.OptionSet{
		Long: []gong.LongOption{
			{Name: "help"},
			{Name: "output", TakesData: true},
		},
		Short: []gong.ShortOption{
			{Char: 'h'},
		},
	}

# Features

  - Long options with double dash prefix (`--help`), with data values either
    in-argument (`--output=file`) or in the next argument (`--output file`).

  - Short option clusters with single dash prefix (`-abc`), where a
    data-taking short option consumes the remainder of the cluster
    (`-ofile`) or the next argument.

  - Abbreviated long option matching (`--hel` for `--help`), so long as the
    abbreviation is unique; an exact match always wins over abbreviations.

  - Command arguments with per-command nested option and command sets,
    allowing `prog deploy --target=prod` style programs of arbitrary depth.

  - Early terminator (`--`) support, and an optional “posixly correct” mode
    where option interpretation stops at the first positional.

  - An alternate parsing mode with single dash prefixed long options only.

# Problem reporting

Parsing never aborts: every recognizable problem (unknown option, ambiguous
abbreviation, missing or unexpected data value) is reported as a typed item
in the analysis, in input order, and parsing continues with the next token.
The analysis carries aggregate Error and Warn flags so callers can cheaply
decide whether details need inspecting.

Describing the available options is a separate concern from parsing;
validation of a description (duplicate or forbidden identifiers) is opt-in
through the Validate and IsValid methods and is never performed during
parsing itself.
*/
package gong

import (
	"io"
	"log"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
