// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

// NewAlphabet returns a fresh Lexicon pre-populated with the 52
// single-character strings a-z then A-Z, interned in that order: Sym 0 is
// "a", Sym 25 is "z", Sym 26 is "A", Sym 51 is "Z". A convenience for hosts
// that index single-letter names directly.
func NewAlphabet() *Lexicon {
	l := NewWithOpts(WithCapacity(52))
	for c := byte('a'); c <= 'z'; c++ {
		l.Intern(string(c))
	}
	for c := byte('A'); c <= 'Z'; c++ {
		l.Intern(string(c))
	}
	return l
}
