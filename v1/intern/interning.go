// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

// Interner is the store-or-retrieve capability contract.
//
// Intern either returns the key already associated with equal content or
// stores the value and returns a newly minted key. Lookup resolves a key back
// to the stored content; a key the interner did not issue yields an *Error
// with code UnknownSymErr rather than undefined behavior.
type Interner[K comparable, V any] interface {
	Intern(value V) K
	Lookup(key K) (V, error)
}
