// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gong

import "iter"

// ItemType - the class of an analysis item.
type ItemType int

// Classes of items identified and extracted from an argument list.
const (
	// ItemPositional - argument not considered an option, command, or early
	// terminator. The text is held in Value.
	ItemPositional ItemType = iota
	// ItemEarlyTerminator - the early terminator (`--`) was encountered.
	ItemEarlyTerminator
	// ItemLong - long option match. A data value, if any, is held in Value.
	ItemLong
	// ItemLongUnknown - looked like a long option, but no match. Name holds
	// the text as given (empty for arguments of the form `--=...`).
	ItemLongUnknown
	// ItemLongAmbiguous - abbreviated long option matching multiple
	// available options. Name holds the abbreviation as given; Candidates
	// holds the full names it matched, in declaration order.
	ItemLongAmbiguous
	// ItemLongWithUnexpectedData - long option match, but the option takes
	// no data and a value was attached (e.g. `--foo=bar`).
	ItemLongWithUnexpectedData
	// ItemLongMissingData - long option match requiring a data value, with
	// none available.
	ItemLongMissingData
	// ItemShort - short option match. A data value, if any, is held in
	// Value.
	ItemShort
	// ItemShortUnknown - unknown short option character.
	ItemShortUnknown
	// ItemShortMissingData - short option match requiring a data value,
	// with none available.
	ItemShortMissingData
	// ItemCommand - command match.
	ItemCommand
)

func (t ItemType) String() string {
	switch t {
	case ItemPositional:
		return "Positional"
	case ItemEarlyTerminator:
		return "EarlyTerminator"
	case ItemLong:
		return "Long"
	case ItemLongUnknown:
		return "LongUnknown"
	case ItemLongAmbiguous:
		return "LongAmbiguous"
	case ItemLongWithUnexpectedData:
		return "LongWithUnexpectedData"
	case ItemLongMissingData:
		return "LongMissingData"
	case ItemShort:
		return "Short"
	case ItemShortUnknown:
		return "ShortUnknown"
	case ItemShortMissingData:
		return "ShortMissingData"
	case ItemCommand:
		return "Command"
	}
	return "Unknown"
}

// DataLocation - describes where an option's data value was found.
type DataLocation int

const (
	// SameArg - found in the same argument (after an `=` for long options,
	// or the remaining characters of the cluster for a short option).
	SameArg DataLocation = iota
	// NextArg - found in the next argument, which was consumed as data.
	NextArg
)

func (l DataLocation) String() string {
	if l == NextArg {
		return "NextArg"
	}
	return "SameArg"
}

// Item - one classified analysis item.
//
// Which fields are meaningful depends upon Type; see the ItemType constants.
type Item struct {
	Type ItemType
	// Index - index of the input token the item derives from.
	Index int
	// Name - long option or command name. For matched options this is the
	// full name, not a given abbreviation.
	Name string
	// Char - short option character.
	Char rune
	// Value - option data value, or positional text.
	Value string
	// HasValue - a data value was supplied (it may be an empty string).
	HasValue bool
	// Location - where the data value was found, when HasValue is set.
	Location DataLocation
	// Candidates - full option names matched by an ambiguous abbreviation.
	Candidates []string
}

// isError - error level problems (missing data, ambiguity).
func (i Item) isError() bool {
	switch i.Type {
	case ItemLongAmbiguous, ItemLongMissingData, ItemShortMissingData:
		return true
	}
	return false
}

// isWarn - warn level problems (unknown options, unexpected data).
func (i Item) isWarn() bool {
	switch i.Type {
	case ItemLongUnknown, ItemShortUnknown, ItemLongWithUnexpectedData:
		return true
	}
	return false
}

// Analysis - the analysis of an argument list.
//
// Items preserve the order of the tokens they derive from; a short option
// cluster yields one item per character, in cluster order. An Analysis is
// not mutated by its query methods.
type Analysis struct {
	// Items - ordered set of items describing what was found.
	Items []Item
	// Error - quick indication of error level issues (e.g. an ambiguous
	// match, or missing data value).
	Error bool
	// Warn - quick indication of warn level issues (e.g. an unknown option,
	// or unexpected data value).
	Warn bool
}

func (a *Analysis) add(item Item) {
	a.Items = append(a.Items, item)
	if item.isError() {
		a.Error = true
	}
	if item.isWarn() {
		a.Warn = true
	}
}

// HasProblems - tells if any problem of either level was encountered.
func (a *Analysis) HasProblems() bool {
	return a.Error || a.Warn
}

// FindOption - selects an option for the Analysis query methods, by long
// name, short character, or a related pair of both.
type FindOption struct {
	Long  string
	Short rune
}

// FindLong - selects a long option by name.
func FindLong(name string) FindOption {
	return FindOption{Long: name}
}

// FindShort - selects a short option by character.
func FindShort(ch rune) FindOption {
	return FindOption{Short: ch}
}

// FindPair - selects a related long and short option pair.
func FindPair(ch rune, name string) FindOption {
	return FindOption{Long: name, Short: ch}
}

// matches - tells if the item is a match item for the selected option.
// Problem items never match.
func (f FindOption) matches(item Item) bool {
	switch item.Type {
	case ItemLong:
		return f.Long != "" && item.Name == f.Long
	case ItemShort:
		return f.Short != 0 && item.Char == f.Short
	}
	return false
}

// OptionUsed - tells if the selected option was matched at least once.
func (a *Analysis) OptionUsed(f FindOption) bool {
	for _, item := range a.Items {
		if f.matches(item) {
			return true
		}
	}
	return false
}

// OptionUseCount - number of times the selected option was matched.
func (a *Analysis) OptionUseCount(f FindOption) int {
	count := 0
	for _, item := range a.Items {
		if f.matches(item) {
			count++
		}
	}
	return count
}

// LastValue - the data value of the most recent match of the selected
// option. The second return is false if the option takes no data or was
// never used.
func (a *Analysis) LastValue(f FindOption) (string, bool) {
	for i := len(a.Items) - 1; i >= 0; i-- {
		if f.matches(a.Items[i]) && a.Items[i].HasValue {
			return a.Items[i].Value, true
		}
	}
	return "", false
}

// AllValues - all data values of the selected option, in order of
// occurrence.
func (a *Analysis) AllValues(f FindOption) []string {
	var values []string
	for _, item := range a.Items {
		if f.matches(item) && item.HasValue {
			values = append(values, item.Value)
		}
	}
	return values
}

// Positionals - returns a sequence over the positional values, in order.
// Each call produces a fresh sequence; it can be ranged over any number of
// times.
func (a *Analysis) Positionals() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range a.Items {
			if item.Type == ItemPositional {
				if !yield(item.Value) {
					return
				}
			}
		}
	}
}
