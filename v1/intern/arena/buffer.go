// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

import (
	"math/bits"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// alloc copies s into the arena and returns a view over the copied bytes.
// The view stays valid for the life of the Lexicon: appends never exceed the
// active buffer's capacity, so its backing array never relocates, and a full
// buffer is retired rather than regrown. A string is never split across two
// buffers; growth happens before the append when the remaining capacity
// cannot hold all of s.
func (l *Lexicon) alloc(s string) string {
	if len(s) == 0 {
		return ""
	}

	if cap(l.buf)-len(l.buf) < len(s) {
		l.grow(len(s))
	}

	start := len(l.buf)
	l.buf = append(l.buf, s...)

	// The appended region is write-once: later appends only touch bytes
	// past start+len(s), so the view is immutable in practice.
	return unsafe.String(&l.buf[start], len(s))
}

// grow retires the active buffer and allocates a replacement that can hold a
// pending string of length n. Doubling alone is not enough: n may exceed
// every prior capacity, so the new capacity is the next power of two of
// max(cap, n)+1.
func (l *Lexicon) grow(n int) {
	old := cap(l.buf)
	if old > 0 {
		// Views into the old buffer stay reachable through the
		// reverse table for the Lexicon's remaining lifetime.
		l.retired = append(l.retired, l.buf)
	}

	newCap := nextPowerOfTwo(max(old, n) + 1)
	l.buf = make([]byte, 0, newCap)

	if l.logger != nil {
		l.logger.WithFields(logrus.Fields{
			"retired_cap": old,
			"new_cap":     newCap,
			"entries":     len(l.strs),
		}).Debug("retiring arena buffer")
	}
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
