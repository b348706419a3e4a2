// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gong

import (
	"fmt"
	"strings"
	"unicode"
)

// LongOption - description of an available long option (e.g. `--help`).
type LongOption struct {
	// Name - long option name, excluding the dash prefix.
	Name string
	// TakesData - the option requires a data value.
	TakesData bool
}

// ShortOption - description of an available short option (e.g. `-h`).
type ShortOption struct {
	// Char - short option character.
	Char rune
	// TakesData - the option requires a data value.
	TakesData bool
}

// OptionSet - fixed set of available options to match against.
//
// Slices are kept in declaration order; candidates of an ambiguous
// abbreviation are reported in that order. Suitable for static creation via
// composite literal; use OptionSetEx for incremental construction.
type OptionSet struct {
	Long  []LongOption
	Short []ShortOption
}

// OptionSetEx - extendible option set.
//
// This is the growable builder counterpart of OptionSet. Identifiers are
// recorded as given, never silently dropped; problems with them surface
// through Validate on the normalized set.
type OptionSetEx struct {
	long  []LongOption
	short []ShortOption
}

// NewOptionSetEx - returns an empty extendible option set.
func NewOptionSetEx() *OptionSetEx {
	return &OptionSetEx{}
}

// AddLong - adds a long option.
func (s *OptionSetEx) AddLong(name string, takesData bool) *OptionSetEx {
	s.long = append(s.long, LongOption{Name: name, TakesData: takesData})
	return s
}

// AddShort - adds a short option.
func (s *OptionSetEx) AddShort(ch rune, takesData bool) *OptionSetEx {
	s.short = append(s.short, ShortOption{Char: ch, TakesData: takesData})
	return s
}

// AddPair - adds a related long option and short option pair.
func (s *OptionSetEx) AddPair(ch rune, name string, takesData bool) *OptionSetEx {
	return s.AddShort(ch, takesData).AddLong(name, takesData)
}

// AddShortsFromString - adds multiple short options described getopt style.
//
// Each character may be followed by a colon to mark it as data-taking.
// For example "ab:cd" adds four short options of which only 'b' takes data.
// Leading or repeated colons are ignored.
func (s *OptionSetEx) AddShortsFromString(set string) *OptionSetEx {
	runes := []rune(set)
	for i := 0; i < len(runes); i++ {
		if runes[i] == ':' {
			continue
		}
		takesData := i+1 < len(runes) && runes[i+1] == ':'
		s.AddShort(runes[i], takesData)
	}
	return s
}

// IsEmpty - tells if the set holds no options.
func (s *OptionSetEx) IsEmpty() bool {
	return len(s.long) == 0 && len(s.short) == 0
}

// AsFixed - normalizes into the fixed OptionSet shape consumed by the parser.
func (s *OptionSetEx) AsFixed() *OptionSet {
	return &OptionSet{Long: s.long, Short: s.short}
}

// IsEmpty - tells if the set holds no options.
func (s *OptionSet) IsEmpty() bool {
	return len(s.Long) == 0 && len(s.Short) == 0
}

// OptionFlawKind - the kind of problem found with an option description.
type OptionFlawKind int

// Option description flaws.
const (
	FlawLongEmptyName OptionFlawKind = iota
	FlawLongForbiddenChar
	FlawLongDuplicated
	FlawShortForbiddenChar
	FlawShortDuplicated
)

// OptionFlaw - description of a validation issue within an option set.
type OptionFlaw struct {
	Kind OptionFlawKind
	// Name - the offending long option name, when applicable.
	Name string
	// Char - the offending character, when applicable.
	Char rune
}

func (f OptionFlaw) String() string {
	switch f.Kind {
	case FlawLongEmptyName:
		return "long option name is empty"
	case FlawLongForbiddenChar:
		return fmt.Sprintf("long option name %q contains forbidden character %q", f.Name, f.Char)
	case FlawLongDuplicated:
		return fmt.Sprintf("long option %q duplicated", f.Name)
	case FlawShortForbiddenChar:
		return fmt.Sprintf("short option %q is a forbidden character", f.Char)
	case FlawShortDuplicated:
		return fmt.Sprintf("short option %q duplicated", f.Char)
	}
	return "unknown flaw"
}

// validateLongName - checks a name as a possible long option, returning the
// first flaw found, if any.
//
// A long option name cannot contain an `=` (it is the split point for
// in-argument data values), cannot begin with a dash (would clash with
// option prefix identification) and cannot contain whitespace or the
// Unicode replacement character.
func validateLongName(name string) (OptionFlaw, bool) {
	if name == "" {
		return OptionFlaw{Kind: FlawLongEmptyName}, false
	}
	if strings.HasPrefix(name, "-") {
		return OptionFlaw{Kind: FlawLongForbiddenChar, Name: name, Char: '-'}, false
	}
	for _, ch := range name {
		if ch == '=' || ch == '�' || unicode.IsSpace(ch) {
			return OptionFlaw{Kind: FlawLongForbiddenChar, Name: name, Char: ch}, false
		}
	}
	return OptionFlaw{}, true
}

// validateShortChar - checks a character as a possible short option,
// returning the first flaw found, if any.
//
// A dash would clash with identification of long options and the early
// terminator; digits are reserved to keep negative number arguments
// unambiguous; the Unicode replacement character stands in for invalid
// input bytes during parsing.
func validateShortChar(ch rune) (OptionFlaw, bool) {
	if ch == '-' || ch == '�' || unicode.IsDigit(ch) {
		return OptionFlaw{Kind: FlawShortForbiddenChar, Char: ch}, false
	}
	return OptionFlaw{}, true
}

// IsValid - checks validity of the option set.
//
// Note, only the identifier problems that could cause issues when parsing
// are checked for; passing validation is not a confirmation that the
// identifiers chosen are all sensible.
func (s *OptionSet) IsValid() bool {
	return len(s.Validate()) == 0
}

// Validate - checks validity of the option set, returning details of any
// problems found, in order. An empty return means the set is valid.
func (s *OptionSet) Validate() []OptionFlaw {
	var flaws []OptionFlaw
	for _, l := range s.Long {
		if f, ok := validateLongName(l.Name); !ok {
			flaws = append(flaws, f)
		}
	}
	for _, sh := range s.Short {
		if f, ok := validateShortChar(sh.Char); !ok {
			flaws = append(flaws, f)
		}
	}
	flaws = append(flaws, s.findDuplicateShorts()...)
	flaws = append(flaws, s.findDuplicateLongs()...)
	return flaws
}

func (s *OptionSet) findDuplicateShorts() []OptionFlaw {
	var flaws []OptionFlaw
	seen := map[rune]int{}
	for _, sh := range s.Short {
		seen[sh.Char]++
		if seen[sh.Char] == 2 {
			flaws = append(flaws, OptionFlaw{Kind: FlawShortDuplicated, Char: sh.Char})
		}
	}
	return flaws
}

func (s *OptionSet) findDuplicateLongs() []OptionFlaw {
	var flaws []OptionFlaw
	seen := map[string]int{}
	for _, l := range s.Long {
		seen[l.Name]++
		if seen[l.Name] == 2 {
			flaws = append(flaws, OptionFlaw{Kind: FlawLongDuplicated, Name: l.Name})
		}
	}
	return flaws
}
