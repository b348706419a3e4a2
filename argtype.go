// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gong

import "strings"

// argType - basic argument type, before matching against the available sets.
type argType int

const (
	argTypeNonOption argType = iota
	argTypeEarlyTerminator
	argTypeLong
	argTypeShortSet
)

/*
classifyArg - assess the basic type of the given argument under the given
mode, returning option bodies with their dash prefix stripped.

A lone dash is not an option; it conventionally stands for stdin/stdout and
is classified as a non-option. The early terminator is recognized in both
modes. In alternate mode there are no short options; anything with a single
dash prefix is a long option, so `--foo` comes back as the long body `-foo`
(which cannot match, dashes being forbidden in names).
*/
func classifyArg(arg string, mode Mode) (argType, string) {
	if arg == "--" {
		return argTypeEarlyTerminator, ""
	}
	if mode == Alternate {
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			return argTypeLong, arg[1:]
		}
		return argTypeNonOption, arg
	}
	if len(arg) > 2 && strings.HasPrefix(arg, "--") {
		return argTypeLong, arg[2:]
	}
	if len(arg) > 1 && strings.HasPrefix(arg, "-") {
		return argTypeShortSet, arg[1:]
	}
	return argTypeNonOption, arg
}

// splitLongComponents - splits the name and optional in-same-argument data
// value from a long option body (prefix already stripped). The first `=` is
// the split point; the value may legitimately be an empty string.
func splitLongComponents(body string) (name, data string, hasData bool) {
	if i := strings.IndexByte(body, '='); i >= 0 {
		return body[:i], body[i+1:], true
	}
	return body, "", false
}
