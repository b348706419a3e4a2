// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gong

// Mode - option parsing mode.
type Mode int

// Option parsing modes.
const (
	// Standard (default): short options with single dash prefix (`-h`) and
	// long options with double dash prefix (`--help`).
	Standard Mode = iota
	// Alternate: long options only, with single dash prefix (`-help`).
	Alternate
)

// Settings - settings controlling parsing behaviour. Immutable for the
// duration of one parse.
type Settings struct {
	// Mode - option parsing mode to use.
	Mode Mode
	// AllowAbbreviations - allow abbreviated long option name matching.
	AllowAbbreviations bool
	// PosixlyCorrect - stop interpretation of arguments as possible options
	// or commands upon encountering a positional argument, as the POSIX
	// standards require, similar to encountering an early terminator.
	PosixlyCorrect bool
}

// DefaultSettings - standard mode, abbreviations allowed, free mixing of
// options and positionals.
func DefaultSettings() Settings {
	return Settings{Mode: Standard, AllowAbbreviations: true}
}

// SetMode - sets the option parsing mode.
func (s *Settings) SetMode(mode Mode) *Settings {
	s.Mode = mode
	return s
}

// SetAllowAbbreviations - controls matching of abbreviated long option names.
func (s *Settings) SetAllowAbbreviations(allow bool) *Settings {
	s.AllowAbbreviations = allow
	return s
}

// SetPosixlyCorrect - controls whether option interpretation stops
// permanently at the first positional argument.
func (s *Settings) SetPosixlyCorrect(enable bool) *Settings {
	s.PosixlyCorrect = enable
	return s
}

// Parser - holds the option set and command set descriptions used for
// parsing input arguments, along with parser settings.
//
// A Parser does not mutate the descriptions it holds; independent parses
// over a shared description are safe to run concurrently.
type Parser struct {
	// Options - the main (top level) option set.
	Options *OptionSet
	// Commands - the main (top level) command set.
	Commands *CommandSet
	// Settings - parser settings.
	Settings Settings
}

// NewParser - returns a parser for the given descriptions, with default
// settings. Either set may be nil for none.
func NewParser(options *OptionSet, commands *CommandSet) *Parser {
	if options == nil {
		options = &OptionSet{}
	}
	if commands == nil {
		commands = &CommandSet{}
	}
	return &Parser{
		Options:  options,
		Commands: commands,
		Settings: DefaultSettings(),
	}
}

// SetMode - sets the option parsing mode.
func (p *Parser) SetMode(mode Mode) *Parser {
	p.Settings.Mode = mode
	return p
}

// SetAllowAbbreviations - controls matching of abbreviated long option names.
func (p *Parser) SetAllowAbbreviations(allow bool) *Parser {
	p.Settings.AllowAbbreviations = allow
	return p
}

// SetPosixlyCorrect - controls whether option interpretation stops
// permanently at the first positional argument.
func (p *Parser) SetPosixlyCorrect(enable bool) *Parser {
	p.Settings.PosixlyCorrect = enable
	return p
}

// IsValid - checks validity of the held option set and command set.
//
// Validation is advisory and opt-in; it is never run during parsing itself.
// Parsing with a non-valid description gives unspecified classifications for
// the tokens affected by the flaw.
func (p *Parser) IsValid() bool {
	return p.Options.IsValid() && p.Commands.IsValid()
}

// Validate - checks validity of the held option set and command set,
// returning details of any problems found. Empty returns mean valid.
func (p *Parser) Validate() ([]OptionFlaw, []CommandFlaw) {
	return p.Options.Validate(), p.Commands.Validate()
}

// ParseIter - returns an iterator over the analysis of the given argument
// list. Each call to Next consumes one input token (or one short option of
// a cluster; sometimes an extra token is consumed as a data value) and
// returns a single item.
//
// The argument list is expected to not include the program name entry.
func (p *Parser) ParseIter(args []string) *ParseIter {
	return newParseIter(args, p)
}

// Parse - parses the given argument list, returning the complete analysis.
//
// This is the eager counterpart of ParseIter: it drives the same iterator
// to exhaustion, collecting items into an Analysis with its data-mining
// query methods. There is no abort path; every problem encountered is
// reported as an item and parsing always runs to completion.
func (p *Parser) Parse(args []string) *Analysis {
	analysis := &Analysis{}
	it := p.ParseIter(args)
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		analysis.add(item)
	}
	return analysis
}
