// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

// Stats is a point-in-time snapshot of a Lexicon's table and arena usage.
type Stats struct {
	// Entries is the number of distinct interned strings.
	Entries int

	// InternedBytes is the total number of bytes copied into the arena,
	// across the active and all retired buffers.
	InternedBytes int

	// BufferUsed and BufferCapacity describe the active buffer.
	BufferUsed     int
	BufferCapacity int

	// RetiredBuffers and RetiredBytes describe buffers kept alive only
	// because issued views still reference them.
	RetiredBuffers int
	RetiredBytes   int
}

// Stats returns a snapshot of the Lexicon's current usage.
func (l *Lexicon) Stats() Stats {
	st := Stats{
		Entries:        len(l.strs),
		BufferUsed:     len(l.buf),
		BufferCapacity: cap(l.buf),
		RetiredBuffers: len(l.retired),
	}

	for _, b := range l.retired {
		st.RetiredBytes += len(b)
	}
	st.InternedBytes = st.RetiredBytes + st.BufferUsed

	return st
}

// Fingerprint returns a 64-bit digest of the interned corpus, maintained
// incrementally as strings are interned. Two Lexicons that interned the same
// distinct strings in the same order report the same fingerprint, which
// makes it usable as a cache key for a compilation unit's symbol table. The
// fingerprint is order-sensitive and covers distinct entries only;
// re-interning known content does not change it.
func (l *Lexicon) Fingerprint() uint64 {
	return l.digest.Sum64()
}
