// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package arena implements an arena-backed string interner.
//
// A Lexicon owns three mutually consistent collections: a dedup map from
// content to handle, a reverse table from handle to content, and a growable
// byte arena holding the single canonical copy of every interned string.
// The arena never relocates written bytes: when the active buffer cannot hold
// a pending string it is retired, unmodified, and a larger buffer takes its
// place. Views handed out by Lookup therefore stay valid for as long as they
// are reachable.
//
// The Lexicon is a write-mostly, append-only, single-owner structure. It is
// not safe for concurrent mutation; a host that shares one across goroutines
// must wrap it in its own synchronization.
package arena

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/alex60217101990/lexicon/v1/intern"
)

// BaseCapacity is the default initial-capacity hint for WithCapacity callers
// that have no better estimate. Initial value just guessed; tune per
// workload.
const BaseCapacity = 100

// Lexicon is an arena-backed string interner. The zero value is not usable;
// construct with New or NewWithOpts.
type Lexicon struct {
	// syms maps content to its handle. Keys are views into the arena, so
	// the map holds no copies of its own.
	syms map[string]intern.Sym

	// strs is the reverse table: strs[sym.Raw()] is the content of sym.
	// Always the same length as syms.
	strs []string

	// buf is the active arena buffer. len(buf) is the used portion;
	// cap(buf) is fixed at allocation and never exceeded, so the backing
	// array never relocates.
	buf []byte

	// retired holds previous active buffers. Each is immutable from the
	// moment it is retired; views into it remain reachable via strs.
	retired [][]byte

	// digest accumulates the corpus fingerprint as strings are interned.
	digest *xxhash.Digest

	// logger, when set, receives debug events on buffer retirement.
	logger logrus.FieldLogger
}

var _ intern.Interner[intern.Sym, string] = (*Lexicon)(nil)

// New creates an empty Lexicon.
func New() *Lexicon {
	return NewWithOpts()
}

// Opt is a configuration option for the Lexicon.
type Opt func(*Lexicon)

// WithCapacity pre-sizes the active arena buffer for roughly n bytes of
// interned content, rounded up to a power of two. A pure tuning knob; the
// arena grows on demand either way.
func WithCapacity(n int) Opt {
	return func(l *Lexicon) {
		if n > 0 {
			l.buf = make([]byte, 0, nextPowerOfTwo(n))
		}
	}
}

// WithLogger directs buffer-retirement events to the given logger at debug
// level. Without it the Lexicon never logs.
func WithLogger(logger logrus.FieldLogger) Opt {
	return func(l *Lexicon) {
		l.logger = logger
	}
}

// NewWithOpts creates an empty Lexicon with custom options.
func NewWithOpts(opts ...Opt) *Lexicon {
	l := &Lexicon{
		syms:   make(map[string]intern.Sym),
		digest: xxhash.New(),
	}

	// No arena buffer yet: allocation is deferred to the first dedup miss.

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Intern stores s if it is not already stored and returns its handle. The
// n-th distinct string interned receives Sym n-1; re-interning known content
// returns the existing handle without touching the arena.
func (l *Lexicon) Intern(s string) intern.Sym {
	if sym, ok := l.syms[s]; ok {
		return sym
	}

	if uint64(len(l.strs)) > math.MaxUint32 {
		panic("arena: sym space exhausted")
	}

	view := l.alloc(s)
	sym := intern.NewSym(uint32(len(l.strs)))

	l.syms[view] = sym
	l.strs = append(l.strs, view)
	l.digestAdd(view)

	return sym
}

// Lookup returns the content behind a handle issued by this Lexicon. The
// returned view is backed by arena memory and stays valid as long as it is
// reachable. A handle this Lexicon did not issue yields an *intern.Error
// with code intern.UnknownSymErr.
func (l *Lexicon) Lookup(sym intern.Sym) (string, error) {
	if uint64(sym.Raw()) >= uint64(len(l.strs)) {
		return "", intern.NewUnknownSymError(sym)
	}
	return l.strs[sym.Raw()], nil
}

// MustLookup is like Lookup but panics on an unknown handle. For callers
// that own the only source of handles and want index-style access.
func (l *Lexicon) MustLookup(sym intern.Sym) string {
	s, err := l.Lookup(sym)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of distinct strings interned so far.
func (l *Lexicon) Len() int {
	return len(l.strs)
}

// digestAdd feeds one newly interned string into the corpus fingerprint.
// Length-prefixed so that ("ab","c") and ("a","bc") digest differently.
func (l *Lexicon) digestAdd(s string) {
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(s)))
	_, _ = l.digest.Write(n[:])
	_, _ = l.digest.WriteString(s)
}
