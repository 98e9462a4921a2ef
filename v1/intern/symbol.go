// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package intern defines the handle type and capability contracts for string
// interning.
//
// Interning replaces repeated string content with a single canonical stored
// copy plus a lightweight handle. Downstream consumers (lexers, compilers,
// symbol tables) compare handles by value equality instead of comparing
// string content, and avoid re-allocating frequently repeated text.
//
// The package contains only contracts and the handle type; the arena-backed
// implementation lives in the intern/arena subpackage. Components should
// depend on the Interner interface rather than a concrete implementation so
// that a no-op or testing interner can be substituted.
package intern

import (
	"cmp"
	"strconv"
)

// Sym is a compact, copyable handle standing in for one interned string.
// Handles are assigned densely from zero in insertion order, so they double
// as indices into caller-side tables.
//
// Two Syms are equal iff they were produced for the same content by the same
// interner instance. A Sym issued by one interner carries no meaning for
// another; presenting it elsewhere is a contract violation surfaced by Lookup
// as an unknown-sym error.
type Sym uint32

// NewSym returns the Sym with the given raw value.
func NewSym(n uint32) Sym {
	return Sym(n)
}

// Raw returns the numeric value of the handle, for interop with host data
// structures such as dense arrays indexed by Sym.
func (s Sym) Raw() uint32 {
	return uint32(s)
}

// Compare orders handles numerically, returning -1, 0, or +1.
func (s Sym) Compare(o Sym) int {
	return cmp.Compare(s, o)
}

// Sym implements Symbolic, so a bare handle can stand in wherever a
// handle-bearing value is expected.
func (s Sym) Sym() Sym {
	return s
}

// String renders the handle as a marked token, e.g. $17.
func (s Sym) String() string {
	return "$" + strconv.FormatUint(uint64(s), 10)
}

// Symbolic is implemented by types that carry an interned-name handle.
// Richer token or AST types expose their name through it without re-exposing
// the interner that produced the handle.
type Symbolic interface {
	Sym() Sym
}
