// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import "unique"

// Handle is a canonical reference to interned string content, backed by the
// runtime's global canonicalization map. Handles compare equal iff their
// content is equal.
type Handle = unique.Handle[string]

// InternString returns the canonical handle for s.
func InternString(s string) Handle {
	return unique.Make(s)
}

// GetString retrieves the content behind a handle.
func GetString(h Handle) string {
	return h.Value()
}

// Canonical is an Interner backed by the runtime's global canonicalization
// map. Unlike an arena interner it assigns no dense numeric handles and keeps
// no per-instance state, so it is safe for concurrent use. It suits callers
// that only need content deduplication, not Sym indices.
type Canonical struct{}

var _ Interner[Handle, string] = Canonical{}

// Intern implements Interner.
func (Canonical) Intern(s string) Handle {
	return unique.Make(s)
}

// Lookup implements Interner. The zero Handle references no content and
// yields an unknown-sym error.
func (Canonical) Lookup(h Handle) (string, error) {
	if h == (Handle{}) {
		return "", &Error{
			Code:    UnknownSymErr,
			Message: "zero handle",
		}
	}
	return h.Value(), nil
}
