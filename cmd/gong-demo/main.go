// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command gong-demo - test program for the gong library.
//
// It takes user supplied command line arguments, parses them against an
// example set of available options and commands, and prints a description of
// the resulting analysis.
//
// Flags:
//
//	-alt    parse in alternate mode (single dash long options only)
//	-noabbr disable abbreviated long option matching
//	-posix  posixly correct mode
//
// These demo flags must come before a literal `//` separator; everything
// after the separator is handed to the library untouched, e.g.:
//
//	gong-demo -posix // --output=a.txt -hx foo
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jnqnfe/gong"
)

var demoOptions = gong.OptionSet{
	Long: []gong.LongOption{
		{Name: "help"},
		{Name: "foo"},
		{Name: "version"},
		{Name: "foobar"},
		{Name: "ábc"},
		{Name: "hah", TakesData: true},
	},
	Short: []gong.ShortOption{
		{Char: 'h'},
		{Char: '❤'},
		{Char: 'x'},
		{Char: 'o', TakesData: true},
	},
}

var demoCommands = gong.CommandSet{
	Commands: []gong.Command{
		{
			Name: "deploy",
			Options: &gong.OptionSet{
				Long: []gong.LongOption{
					{Name: "target", TakesData: true},
					{Name: "dry-run"},
				},
			},
			SubCommands: gong.CommandSet{
				Commands: []gong.Command{
					{
						Name: "status",
						Options: &gong.OptionSet{
							Long: []gong.LongOption{{Name: "verbose"}},
						},
					},
				},
			},
		},
	},
}

var (
	header  = color.New(color.FgMagenta, color.Bold)
	okay    = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
	failure = color.New(color.FgRed)
	subtle  = color.New(color.Italic)
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	alt := flag.Bool("alt", false, "parse in alternate mode (single dash long options only)")
	noAbbr := flag.Bool("noabbr", false, "disable abbreviated long option matching")
	posix := flag.Bool("posix", false, "posixly correct mode")
	flag.Parse()

	args := flag.Args()
	// Everything after a literal `//` is input for the library; without the
	// separator all remaining arguments are.
	for i, a := range args {
		if a == "//" {
			args = args[i+1:]
			break
		}
	}

	parser := gong.NewParser(&demoOptions, &demoCommands)
	parser.SetAllowAbbreviations(!*noAbbr).SetPosixlyCorrect(*posix)
	if *alt {
		parser.SetMode(gong.Alternate)
	}

	if optFlaws, cmdFlaws := parser.Validate(); len(optFlaws) != 0 || len(cmdFlaws) != 0 {
		for _, f := range optFlaws {
			failure.Printf("description flaw: %s\n", f)
		}
		for _, f := range cmdFlaws {
			failure.Printf("description flaw: %s\n", f)
		}
		os.Exit(1)
	}

	header.Println("[ Mode ]")
	switch {
	case *alt:
		fmt.Println("ALTERNATE: long options only, with single dash prefix.")
	default:
		fmt.Println("STANDARD: short options with single dash prefix, long options with double dash prefix.")
	}
	if *noAbbr {
		fmt.Println("Abbreviated matching disabled!")
	}
	if *posix {
		fmt.Println("Posixly correct behaviour enabled!")
	}

	header.Println("\n[ Available options for test ]")
	for _, o := range demoOptions.Long {
		if o.TakesData {
			fmt.Printf("LONG %s [expects data!]\n", o.Name)
		} else {
			fmt.Printf("LONG %s\n", o.Name)
		}
	}
	for _, o := range demoOptions.Short {
		if o.TakesData {
			fmt.Printf("SHORT %c (%U) [expects data!]\n", o.Char, o.Char)
		} else {
			fmt.Printf("SHORT %c (%U)\n", o.Char, o.Char)
		}
	}
	fmt.Println("COMMAND deploy [options: target*, dry-run; sub-command: status]")

	header.Println("\n[ Your input arguments ]")
	for i, arg := range args {
		fmt.Printf("[%d]: %s\n", i, arg)
	}
	if len(args) == 0 {
		fmt.Println("None!")
	}

	analysis := parser.Parse(args)

	header.Println("\n[ Analysis ]")
	printFlag := func(label string, set bool, col *color.Color) {
		if set {
			fmt.Printf("%s: %s\n", label, col.Sprint("true"))
		} else {
			fmt.Printf("%s: %s\n", label, okay.Sprint("false"))
		}
	}
	printFlag("Errors", analysis.Error, failure)
	printFlag("Warnings", analysis.Warn, warning)
	fmt.Printf("Items: %d\n\n", len(analysis.Items))

	for _, item := range analysis.Items {
		printItem(item)
	}
}

func printItem(item gong.Item) {
	prefix := fmt.Sprintf("[arg %d] ", item.Index)
	switch item.Type {
	case gong.ItemPositional:
		fmt.Printf("%s%s: %s\n", prefix, okay.Sprint("Positional"), item.Value)
	case gong.ItemEarlyTerminator:
		fmt.Printf("%s%s\n", prefix, okay.Sprint("EarlyTerminator"))
	case gong.ItemCommand:
		fmt.Printf("%s%s: %s\n", prefix, okay.Sprint("Command"), item.Name)
	case gong.ItemLong:
		fmt.Printf("%s%s: %s\n", prefix, okay.Sprint("Long"), item.Name)
		printValue(item)
	case gong.ItemLongUnknown:
		fmt.Printf("%s%s: %s\n", prefix, warning.Sprint("UnknownLong"), item.Name)
	case gong.ItemLongAmbiguous:
		fmt.Printf("%s%s: %s (candidates: %v)\n", prefix, failure.Sprint("AmbiguousLong"),
			item.Name, item.Candidates)
	case gong.ItemLongWithUnexpectedData:
		fmt.Printf("%s%s: %s\n    data: %s\n", prefix,
			warning.Sprint("LongWithUnexpectedData"), item.Name, item.Value)
	case gong.ItemLongMissingData:
		fmt.Printf("%s%s: %s\n", prefix, failure.Sprint("LongMissingData"), item.Name)
	case gong.ItemShort:
		fmt.Printf("%s%s: %c (%U)\n", prefix, okay.Sprint("Short"), item.Char, item.Char)
		printValue(item)
	case gong.ItemShortUnknown:
		fmt.Printf("%s%s: %c (%U)\n", prefix, warning.Sprint("UnknownShort"), item.Char, item.Char)
	case gong.ItemShortMissingData:
		fmt.Printf("%s%s: %c (%U)\n", prefix, failure.Sprint("ShortMissingData"), item.Char, item.Char)
	}
}

func printValue(item gong.Item) {
	if !item.HasValue {
		return
	}
	switch item.Location {
	case gong.SameArg:
		subtle.Println("    data found in SAME arg!")
	case gong.NextArg:
		subtle.Println("    data found in NEXT arg!")
	}
	if item.Value == "" {
		subtle.Println("    empty-data")
	} else {
		fmt.Printf("    data: %s\n", item.Value)
	}
}
