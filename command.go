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

// Command - description of an available command argument.
//
// Options and SubCommands describe the sets used for parsing the arguments
// that follow use of the command in an argument list, so a command tree of
// arbitrary depth can be described with this one shape recursing into
// itself.
type Command struct {
	// Name - command name.
	Name string
	// Options - options available once the command has been matched.
	// A nil value means the command has no options of its own.
	Options *OptionSet
	// SubCommands - commands available once the command has been matched.
	SubCommands CommandSet
}

// CommandSet - fixed set of available commands to match against.
//
// Suitable for static creation via composite literal; use CommandSetEx for
// incremental construction.
type CommandSet struct {
	Commands []Command
}

// CommandSetEx - extendible command set.
type CommandSetEx struct {
	commands []Command
}

// NewCommandSetEx - returns an empty extendible command set.
func NewCommandSetEx() *CommandSetEx {
	return &CommandSetEx{}
}

// AddCommand - adds a command.
func (s *CommandSetEx) AddCommand(cmd Command) *CommandSetEx {
	s.commands = append(s.commands, cmd)
	return s
}

// IsEmpty - tells if the set holds no commands.
func (s *CommandSetEx) IsEmpty() bool {
	return len(s.commands) == 0
}

// AsFixed - normalizes into the fixed CommandSet shape consumed by the parser.
func (s *CommandSetEx) AsFixed() *CommandSet {
	return &CommandSet{Commands: s.commands}
}

// IsEmpty - tells if the set holds no commands.
func (s *CommandSet) IsEmpty() bool {
	return len(s.Commands) == 0
}

// CommandFlawKind - the kind of problem found with a command description.
type CommandFlawKind int

// Command description flaws.
const (
	FlawCommandEmptyName CommandFlawKind = iota
	FlawCommandForbiddenChar
	FlawCommandDuplicated
	FlawCommandOptions
)

// CommandFlaw - description of a validation issue within a command set.
//
// Flaws found in nested command sets are reported flat, with Name
// identifying the offending command. A FlawCommandOptions flaw wraps the
// flaw found in the named command's option set.
type CommandFlaw struct {
	Kind CommandFlawKind
	// Name - the offending command name, when applicable.
	Name string
	// Char - the offending character, when applicable.
	Char rune
	// OptionFlaw - the wrapped option set flaw for FlawCommandOptions.
	OptionFlaw OptionFlaw
}

func (f CommandFlaw) String() string {
	switch f.Kind {
	case FlawCommandEmptyName:
		return "command name is empty"
	case FlawCommandForbiddenChar:
		return fmt.Sprintf("command name %q contains forbidden character %q", f.Name, f.Char)
	case FlawCommandDuplicated:
		return fmt.Sprintf("command %q duplicated", f.Name)
	case FlawCommandOptions:
		return fmt.Sprintf("command %q options: %s", f.Name, f.OptionFlaw)
	}
	return "unknown flaw"
}

// validateCommandName - checks a name as a possible command, returning the
// first flaw found, if any.
func validateCommandName(name string) (CommandFlaw, bool) {
	if name == "" {
		return CommandFlaw{Kind: FlawCommandEmptyName}, false
	}
	if strings.HasPrefix(name, "-") {
		return CommandFlaw{Kind: FlawCommandForbiddenChar, Name: name, Char: '-'}, false
	}
	for _, ch := range name {
		if ch == '�' || unicode.IsSpace(ch) {
			return CommandFlaw{Kind: FlawCommandForbiddenChar, Name: name, Char: ch}, false
		}
	}
	return CommandFlaw{}, true
}

// IsValid - checks validity of the command set, recursively.
//
// Note, only the identifier problems that could cause issues when parsing
// are checked for; passing validation is not a confirmation that the
// identifiers chosen are all sensible.
func (s *CommandSet) IsValid() bool {
	return len(s.Validate()) == 0
}

// Validate - checks validity of the command set, returning details of any
// problems found, in order. Each command's own option set and sub-command
// set are validated recursively. An empty return means the set is valid.
func (s *CommandSet) Validate() []CommandFlaw {
	var flaws []CommandFlaw
	seen := map[string]int{}
	for _, cmd := range s.Commands {
		if f, ok := validateCommandName(cmd.Name); !ok {
			flaws = append(flaws, f)
		}
		seen[cmd.Name]++
		if seen[cmd.Name] == 2 {
			flaws = append(flaws, CommandFlaw{Kind: FlawCommandDuplicated, Name: cmd.Name})
		}
		if cmd.Options != nil {
			for _, of := range cmd.Options.Validate() {
				flaws = append(flaws, CommandFlaw{Kind: FlawCommandOptions, Name: cmd.Name, OptionFlaw: of})
			}
		}
		flaws = append(flaws, cmd.SubCommands.Validate()...)
	}
	return flaws
}
