// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gong

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func miningAnalysis(t *testing.T) *Analysis {
	t.Helper()
	options := NewOptionSetEx().
		AddLong("verbose", false).
		AddPair('o', "output", true).
		AddShort('v', false).
		AsFixed()
	analysis := NewParser(options, nil).Parse([]string{
		"in1", "--output=a", "-v", "--verbose", "--output", "b", "in2", "--color",
	})
	if !analysis.Warn || analysis.Error {
		t.Fatalf("unexpected problem flags in fixture: %+v", analysis)
	}
	return analysis
}

func TestOptionUsed(t *testing.T) {
	analysis := miningAnalysis(t)
	cases := []struct {
		name string
		find FindOption
		want bool
	}{
		{"long used", FindLong("verbose"), true},
		{"short used", FindShort('v'), true},
		{"pair either form", FindPair('o', "output"), true},
		{"never used", FindLong("quiet"), false},
		{"unknown item is not a use", FindLong("color"), false},
		{"positional text is not a use", FindLong("in1"), false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := analysis.OptionUsed(tt.find); got != tt.want {
				t.Errorf("OptionUsed == %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptionUseCount(t *testing.T) {
	analysis := miningAnalysis(t)
	if got := analysis.OptionUseCount(FindPair('o', "output")); got != 2 {
		t.Errorf("output use count == %d, want 2", got)
	}
	if got := analysis.OptionUseCount(FindLong("verbose")); got != 1 {
		t.Errorf("verbose use count == %d, want 1", got)
	}
	if got := analysis.OptionUseCount(FindLong("quiet")); got != 0 {
		t.Errorf("quiet use count == %d, want 0", got)
	}
}

func TestLastValue(t *testing.T) {
	analysis := miningAnalysis(t)
	value, ok := analysis.LastValue(FindPair('o', "output"))
	if !ok || value != "b" {
		t.Errorf("LastValue == %q, %v, want \"b\", true", value, ok)
	}
	// A flag has no values even when used.
	if _, ok := analysis.LastValue(FindLong("verbose")); ok {
		t.Error("flag reported a value")
	}
	if _, ok := analysis.LastValue(FindLong("quiet")); ok {
		t.Error("unused option reported a value")
	}
}

func TestAllValues(t *testing.T) {
	analysis := miningAnalysis(t)
	got := analysis.AllValues(FindPair('o', "output"))
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("wrong values (-want +got):\n%s", diff)
	}
	if got := analysis.AllValues(FindLong("quiet")); got != nil {
		t.Errorf("unused option values == %v, want none", got)
	}
}

func TestPositionals(t *testing.T) {
	analysis := miningAnalysis(t)
	want := []string{"in1", "in2"}

	// Each call gives a fresh sequence, usable any number of times.
	for i := 0; i < 2; i++ {
		var got []string
		for value := range analysis.Positionals() {
			got = append(got, value)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("pass %d: wrong positionals (-want +got):\n%s", i, diff)
		}
	}

	// Early break must not affect later iterations.
	for value := range analysis.Positionals() {
		_ = value
		break
	}
	var got []string
	for value := range analysis.Positionals() {
		got = append(got, value)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("after break: wrong positionals (-want +got):\n%s", diff)
	}
}

func TestHasProblems(t *testing.T) {
	options := NewOptionSetEx().AddLong("help", false).AsFixed()
	parser := NewParser(options, nil)

	clean := parser.Parse([]string{"--help", "pos"})
	if clean.HasProblems() || clean.Error || clean.Warn {
		t.Errorf("unexpected problems: %+v", clean)
	}

	warned := parser.Parse([]string{"--bogus"})
	if !warned.HasProblems() || !warned.Warn || warned.Error {
		t.Errorf("wrong flags for unknown option: %+v", warned)
	}
}
