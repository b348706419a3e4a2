// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gong

import "testing"

func TestClassifyArg(t *testing.T) {
	cases := []struct {
		name string
		in   string
		mode Mode
		t    argType
		body string
	}{
		{"empty", "", Standard, argTypeNonOption, ""},
		{"empty", "", Alternate, argTypeNonOption, ""},

		{"lone dash", "-", Standard, argTypeNonOption, "-"},
		{"lone dash", "-", Alternate, argTypeNonOption, "-"},

		{"early terminator", "--", Standard, argTypeEarlyTerminator, ""},
		{"early terminator", "--", Alternate, argTypeEarlyTerminator, ""},

		{"non option", "opt", Standard, argTypeNonOption, "opt"},
		{"non option", "opt", Alternate, argTypeNonOption, "opt"},

		{"long option", "--opt", Standard, argTypeLong, "opt"},
		{"long option with data", "--opt=arg", Standard, argTypeLong, "opt=arg"},
		{"long option empty name", "--=arg", Standard, argTypeLong, "=arg"},

		{"short set", "-opt", Standard, argTypeShortSet, "opt"},
		{"short set with data", "-opt=arg", Standard, argTypeShortSet, "opt=arg"},

		{"alt long option", "-opt", Alternate, argTypeLong, "opt"},
		{"alt long option with data", "-opt=arg", Alternate, argTypeLong, "opt=arg"},
		{"alt double dash prefix", "--opt", Alternate, argTypeLong, "-opt"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotBody := classifyArg(tt.in, tt.mode)
			if gotType != tt.t || gotBody != tt.body {
				t.Errorf("classifyArg(%q, %v) == (%v, %q), want (%v, %q)",
					tt.in, tt.mode, gotType, gotBody, tt.t, tt.body)
			}
		})
	}
}

func TestSplitLongComponents(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		optName string
		data    string
		hasData bool
	}{
		{"no data", "opt", "opt", "", false},
		{"with data", "opt=arg", "opt", "arg", true},
		{"empty data", "opt=", "opt", "", true},
		{"empty name", "=arg", "", "arg", true},
		{"second equals kept", "opt=a=b", "opt", "a=b", true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			name, data, hasData := splitLongComponents(tt.in)
			if name != tt.optName || data != tt.data || hasData != tt.hasData {
				t.Errorf("splitLongComponents(%q) == (%q, %q, %v), want (%q, %q, %v)",
					tt.in, name, data, hasData, tt.optName, tt.data, tt.hasData)
			}
		})
	}
}
