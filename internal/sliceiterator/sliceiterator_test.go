// This file is part of gong.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sliceiterator

import "testing"

func TestIterator(t *testing.T) {
	i := New([]string{"a", "b", "c"})
	if i.Index() != -1 {
		t.Errorf("wrong starting index: %d", i.Index())
	}
	if i.Value() != "" {
		t.Errorf("value before Next: %q", i.Value())
	}
	for n, want := range []string{"a", "b", "c"} {
		if !i.Next() {
			t.Fatalf("Next returned false at %d", n)
		}
		if i.Index() != n {
			t.Errorf("wrong index: got %d, want %d", i.Index(), n)
		}
		if i.Value() != want {
			t.Errorf("wrong value: got %q, want %q", i.Value(), want)
		}
	}
	if i.Next() {
		t.Error("Next returned true past the end")
	}
	if i.Value() != "" {
		t.Errorf("value past the end: %q", i.Value())
	}
}

func TestIteratorEmpty(t *testing.T) {
	i := New(nil)
	if i.Next() {
		t.Error("Next returned true on empty input")
	}
	if i.Value() != "" {
		t.Errorf("value on empty input: %q", i.Value())
	}
}
