// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gong

import (
	"unicode/utf8"

	"github.com/jnqnfe/gong/internal/sliceiterator"
)

// ParseIter - an argument list parsing iterator, created by the ParseIter
// method of Parser.
//
// A ParseIter is a forward-only producer, restartable only by creating a new
// one, and must not be advanced by more than one consumer at a time.
// Independent iterators over a shared description are safe to use
// concurrently.
//
// Methods are provided for changing the option set, command set and
// settings used for subsequent iterations. These are typically only
// applicable to command based programs that, instead of describing the
// entire command structure up front, want to switch the sets manually after
// encountering a command.
type ParseIter struct {
	iter     *sliceiterator.Iterator
	options  *OptionSet
	commands *CommandSet
	settings Settings

	// Set once an early terminator has been seen, or, posixly correct
	// behaviour being required, once a positional has been seen; all
	// remaining arguments are then positionals.
	restArePositionals bool
	// A non-option is only assessed as a possible command while this holds:
	// from the start of parsing until the first non-option that matches no
	// command, re-armed against the nested sets on each command match.
	tryCommandMatching bool
	// In-progress short option cluster, nil outside of one.
	shortSet *shortSetIter
}

// shortSetIter - iteration state over one short option cluster.
type shortSetIter struct {
	// rest - unscanned portion of the cluster (dash prefix stripped).
	rest string
	// index - input token index the cluster came from, recorded in items.
	index int
	// consumed - set when the remaining portion has been taken as the data
	// value of a short option, ending the scan early.
	consumed bool
}

func newParseIter(args []string, p *Parser) *ParseIter {
	return &ParseIter{
		iter:               sliceiterator.New(args),
		options:            p.Options,
		commands:           p.Commands,
		settings:           p.Settings,
		tryCommandMatching: true,
	}
}

// OptionSet - the option set currently in use for parsing.
func (p *ParseIter) OptionSet() *OptionSet {
	return p.options
}

// SetOptionSet - changes the option set used by subsequent iterations.
func (p *ParseIter) SetOptionSet(options *OptionSet) {
	if options == nil {
		options = &OptionSet{}
	}
	p.options = options
}

// CommandSet - the command set currently in use for parsing.
func (p *ParseIter) CommandSet() *CommandSet {
	return p.commands
}

// SetCommandSet - changes the command set used by subsequent iterations.
func (p *ParseIter) SetCommandSet(commands *CommandSet) {
	if commands == nil {
		commands = &CommandSet{}
	}
	p.commands = commands
}

// Settings - copy of the settings currently in use for parsing.
func (p *ParseIter) Settings() Settings {
	return p.settings
}

// SetSettings - changes the settings used by subsequent iterations.
func (p *ParseIter) SetSettings(settings Settings) {
	p.settings = settings
}

// Next - parses the next item, if any.
//
// One call consumes one input token, except within a short option cluster
// where it consumes one character, and except where a data value is taken
// from the next token, in which case that token is consumed too.
func (p *ParseIter) Next() (Item, bool) {
	// Continue from where we left off in a short option cluster?
	if p.shortSet != nil {
		if item, ok := p.nextShort(); ok {
			return item, true
		}
		p.shortSet = nil
	}

	if !p.iter.Next() {
		return Item{}, false
	}
	arg := p.iter.Value()
	index := p.iter.Index()

	t, body := argTypeNonOption, arg
	if !p.restArePositionals {
		t, body = classifyArg(arg, p.settings.Mode)
	}

	switch t {
	case argTypeEarlyTerminator:
		Logger.Printf("early terminator at arg %d", index)
		p.restArePositionals = true
		return Item{Type: ItemEarlyTerminator, Index: index}, true
	case argTypeLong:
		return p.nextLong(index, body), true
	case argTypeShortSet:
		// Defer to cluster iteration; the body is non-empty so there is
		// always a first item.
		p.shortSet = &shortSetIter{rest: body, index: index}
		item, _ := p.nextShort()
		return item, true
	}

	// Not option-like; may be a command or a positional. Once everything
	// is forced positional, command names no longer match either.
	if !p.restArePositionals {
		if p.tryCommandMatching {
			if cmd := matchCommand(arg, p.commands.Commands); cmd != nil {
				Logger.Printf("command %q matched at arg %d, switching sets", cmd.Name, index)
				p.options = cmd.Options
				if p.options == nil {
					p.options = &OptionSet{}
				}
				p.commands = &cmd.SubCommands
				return Item{Type: ItemCommand, Index: index, Name: cmd.Name}, true
			}
			p.tryCommandMatching = false
		}
		if p.settings.PosixlyCorrect {
			p.restArePositionals = true
		}
	}
	return Item{Type: ItemPositional, Index: index, Value: arg}, true
}

// nextLong - classifies a long option body (dash prefix already stripped).
func (p *ParseIter) nextLong(index int, body string) Item {
	name, data, hasData := splitLongComponents(body)

	// Occurs with `--=` or `--=foo` (`-=` or `-=foo` in alternate mode);
	// the data, if any, is ignored.
	if name == "" {
		return Item{Type: ItemLongUnknown, Index: index}
	}

	match := matchLong(name, p.options.Long, p.settings.AllowAbbreviations)
	switch match.kind {
	case matchAmbiguous:
		return Item{Type: ItemLongAmbiguous, Index: index, Name: name, Candidates: match.candidates}
	case matchNone:
		// Any in-argument data is ignored.
		return Item{Type: ItemLongUnknown, Index: index, Name: name}
	}

	// Items carry the option's full name, not a given abbreviation.
	opt := match.opt
	if opt.TakesData {
		// An in-argument value is accepted even when it is an empty string.
		if hasData {
			return Item{Type: ItemLong, Index: index, Name: opt.Name,
				Value: data, HasValue: true, Location: SameArg}
		}
		if p.iter.Next() {
			return Item{Type: ItemLong, Index: index, Name: opt.Name,
				Value: p.iter.Value(), HasValue: true, Location: NextArg}
		}
		return Item{Type: ItemLongMissingData, Index: index, Name: opt.Name}
	}
	if hasData && data != "" {
		return Item{Type: ItemLongWithUnexpectedData, Index: index, Name: opt.Name,
			Value: data, HasValue: true}
	}
	return Item{Type: ItemLong, Index: index, Name: opt.Name}
}

// nextShort - classifies the next character of the in-progress cluster.
func (p *ParseIter) nextShort() (Item, bool) {
	s := p.shortSet
	if s.consumed || s.rest == "" {
		return Item{}, false
	}
	ch, size := utf8.DecodeRuneInString(s.rest)
	s.rest = s.rest[size:]

	opt := matchShort(ch, p.options.Short)
	if opt == nil {
		// Scanning continues past an unknown character; one bad character
		// does not abort the rest of the cluster.
		return Item{Type: ItemShortUnknown, Index: s.index, Char: ch}, true
	}
	if !opt.TakesData {
		return Item{Type: ItemShort, Index: s.index, Char: ch}, true
	}
	// Remaining characters of the cluster, if any, are the value.
	if s.rest != "" {
		value := s.rest
		s.consumed = true
		return Item{Type: ItemShort, Index: s.index, Char: ch,
			Value: value, HasValue: true, Location: SameArg}, true
	}
	if p.iter.Next() {
		return Item{Type: ItemShort, Index: s.index, Char: ch,
			Value: p.iter.Value(), HasValue: true, Location: NextArg}, true
	}
	return Item{Type: ItemShortMissingData, Index: s.index, Char: ch}, true
}
