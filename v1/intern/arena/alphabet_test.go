// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

import (
	"testing"

	"github.com/alex60217101990/lexicon/v1/intern"
)

func TestAlphabetOrdering(t *testing.T) {
	l := NewAlphabet()

	if l.Len() != 52 {
		t.Fatalf("expected 52 entries, got %d", l.Len())
	}

	cases := []struct {
		sym  uint32
		want string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "A"},
		{51, "Z"},
	}

	for _, tc := range cases {
		got, err := l.Lookup(intern.NewSym(tc.sym))
		if err != nil {
			t.Fatalf("Lookup($%d) failed: %v", tc.sym, err)
		}
		if got != tc.want {
			t.Fatalf("expected $%d -> %q, got %q", tc.sym, tc.want, got)
		}
	}
}

func TestAlphabetReIntern(t *testing.T) {
	l := NewAlphabet()

	// Bootstrap entries dedup like any other.
	if sym := l.Intern("a"); sym != intern.NewSym(0) {
		t.Fatalf("expected $0, got %v", sym)
	}
	if sym := l.Intern("Z"); sym != intern.NewSym(51) {
		t.Fatalf("expected $51, got %v", sym)
	}
	if l.Len() != 52 {
		t.Fatalf("expected 52 entries, got %d", l.Len())
	}

	// New content continues the sequence.
	if sym := l.Intern("aa"); sym != intern.NewSym(52) {
		t.Fatalf("expected $52, got %v", sym)
	}
}
