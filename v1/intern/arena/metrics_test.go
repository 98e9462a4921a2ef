// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorValues(t *testing.T) {
	l := New()
	l.Intern("a")
	l.Intern("bb")
	l.Intern("ccc")

	// Matches the capacity sequence verified in TestGrowCapacitySequence:
	// two retired buffers (1+2 bytes) plus an 8-byte active buffer.
	expected := `
# HELP lexicon_arena_buffers Arena buffer count, active plus retired.
# TYPE lexicon_arena_buffers gauge
lexicon_arena_buffers 3
# HELP lexicon_arena_capacity_bytes Capacity of the active arena buffer.
# TYPE lexicon_arena_capacity_bytes gauge
lexicon_arena_capacity_bytes 8
# HELP lexicon_arena_retired_bytes Bytes held by retired arena buffers.
# TYPE lexicon_arena_retired_bytes gauge
lexicon_arena_retired_bytes 3
# HELP lexicon_entries Number of distinct interned strings.
# TYPE lexicon_entries gauge
lexicon_entries 3
# HELP lexicon_interned_bytes Total bytes copied into the arena.
# TYPE lexicon_interned_bytes gauge
lexicon_interned_bytes 6
`

	if err := testutil.CollectAndCompare(NewCollector(l), strings.NewReader(expected)); err != nil {
		t.Fatal(err)
	}
}

func TestCollectorEmptyLexicon(t *testing.T) {
	c := NewCollector(New())

	if got := testutil.CollectAndCount(c); got != 5 {
		t.Fatalf("expected 5 metrics, got %d", got)
	}
	if err := testutil.CollectAndCompare(c, strings.NewReader(`
# HELP lexicon_arena_buffers Arena buffer count, active plus retired.
# TYPE lexicon_arena_buffers gauge
lexicon_arena_buffers 0
`), "lexicon_arena_buffers"); err != nil {
		t.Fatal(err)
	}
}

func TestCollectorLintClean(t *testing.T) {
	l := New()
	l.Intern("a")

	problems, err := testutil.CollectAndLint(NewCollector(l))
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) > 0 {
		t.Fatalf("metric lint problems: %v", problems)
	}
}
