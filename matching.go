// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gong

import "strings"

type longMatchKind int

const (
	matchNone longMatchKind = iota
	matchExact
	matchAbbreviated
	matchAmbiguous
)

// longMatch - result of matching a given name against available long options.
//
// For matchAmbiguous, candidates holds the full names of every option the
// given name abbreviates, in declaration order, and opt is nil.
type longMatch struct {
	kind       longMatchKind
	opt        *LongOption
	candidates []string
}

// matchLong - resolves a (possibly abbreviated) name to an available long
// option.
//
// An exact match always wins, even when the name is also a valid prefix of
// other, longer option names. Otherwise, with abbreviations enabled, the
// name matches as a non-empty proper prefix of the available names: one
// candidate is an abbreviated match, more than one is ambiguous.
func matchLong(name string, longs []LongOption, abbreviations bool) longMatch {
	var match longMatch
	for i := range longs {
		candidate := &longs[i]
		if candidate.Name == name {
			return longMatch{kind: matchExact, opt: candidate}
		}
		if abbreviations && len(name) < len(candidate.Name) && strings.HasPrefix(candidate.Name, name) {
			if match.opt == nil {
				match.opt = candidate
			}
			match.candidates = append(match.candidates, candidate.Name)
		}
	}
	switch len(match.candidates) {
	case 0:
		match.kind = matchNone
	case 1:
		match.kind = matchAbbreviated
		match.candidates = nil
	default:
		match.kind = matchAmbiguous
		match.opt = nil
	}
	return match
}

// matchShort - direct lookup of a short option character. No abbreviation
// concept applies to short options.
func matchShort(ch rune, shorts []ShortOption) *ShortOption {
	for i := range shorts {
		if shorts[i].Char == ch {
			return &shorts[i]
		}
	}
	return nil
}

// matchCommand - exact-string lookup of a command name.
func matchCommand(name string, commands []Command) *Command {
	for i := range commands {
		if commands[i].Name == name {
			return &commands[i]
		}
	}
	return nil
}
