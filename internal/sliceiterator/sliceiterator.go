// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - a cursor over a token slice that allows peeking at
// the next value, used by the parsing engine to consume extra tokens as
// option data values.
package sliceiterator

// Iterator - iterator data. The slice is held read-only.
type Iterator struct {
	data []string
	idx  int
}

// New - builds an Iterator over the given tokens, positioned before the
// first one.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Index - current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is
// another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - the value at the current index, or an empty string outside the
// bounds of the list.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}
