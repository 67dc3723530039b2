package chat

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestHistoryStoreCapKeepsMostRecent(t *testing.T) {
	store := NewHistoryStore(20, time.Hour)

	for i := 0; i < 21; i++ {
		store.Append("s1", Turn{Role: RoleUser, Text: fmt.Sprintf("turn %d", i)})
	}

	turns := store.Snapshot("s1")
	if len(turns) != 20 {
		t.Fatalf("expected 20 turns after 21 appends, got %d", len(turns))
	}
	if turns[0].Text != "turn 1" {
		t.Fatalf("expected oldest surviving turn to be 'turn 1', got %q", turns[0].Text)
	}
	if turns[19].Text != "turn 20" {
		t.Fatalf("expected newest turn to be 'turn 20', got %q", turns[19].Text)
	}
	for i := 1; i < len(turns); i++ {
		if turns[i].Sequence <= turns[i-1].Sequence {
			t.Fatalf("sequence not strictly increasing at index %d", i)
		}
	}
}

func TestHistoryStoreResetRoundTrip(t *testing.T) {
	store := NewHistoryStore(20, time.Hour)

	store.Reset("missing") // idempotent on unknown sessions

	store.Append("s1", Turn{Role: RoleUser, Text: "oi"})
	store.Append("s1", Turn{Role: RoleAssistant, Text: "olá"})
	store.Reset("s1")

	if got := store.Snapshot("s1"); len(got) != 0 {
		t.Fatalf("expected empty snapshot after reset, got %d turns", len(got))
	}

	// Sequence keeps growing across resets, turns are never renumbered.
	store.Append("s1", Turn{Role: RoleUser, Text: "de novo"})
	if got := store.Snapshot("s1"); len(got) != 1 || got[0].Sequence != 2 {
		t.Fatalf("expected one turn with sequence 2 after reset, got %+v", got)
	}
}

func TestHistoryStoreSessionIsolation(t *testing.T) {
	store := NewHistoryStore(20, time.Hour)

	store.Append("a", Turn{Role: RoleUser, Text: "from a"})
	store.Append("b", Turn{Role: RoleUser, Text: "from b"})
	store.Reset("a")

	if got := store.Len("a"); got != 0 {
		t.Fatalf("expected session a to be empty, got %d", got)
	}
	if got := store.Len("b"); got != 1 {
		t.Fatalf("expected session b untouched, got %d", got)
	}
	if store.Sessions() != 2 {
		t.Fatalf("expected 2 tracked sessions, got %d", store.Sessions())
	}
}

func TestHistoryStoreSnapshotIsCopy(t *testing.T) {
	store := NewHistoryStore(20, time.Hour)
	store.Append("s1", Turn{Role: RoleUser, Text: "original"})

	snap := store.Snapshot("s1")
	snap[0].Text = "mutated"

	if got := store.Snapshot("s1")[0].Text; got != "original" {
		t.Fatalf("snapshot mutation leaked into store: %q", got)
	}
}

func TestHistoryStoreConcurrentAppends(t *testing.T) {
	store := NewHistoryStore(100, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			session := fmt.Sprintf("s%d", n%2)
			for j := 0; j < 50; j++ {
				store.Append(session, Turn{Role: RoleUser, Text: "x"})
			}
		}(i)
	}
	wg.Wait()

	if got := store.Len("s0") + store.Len("s1"); got != 500 {
		t.Fatalf("expected 500 turns across sessions, got %d", got)
	}
}

func TestHistoryStoreEvictIdle(t *testing.T) {
	store := NewHistoryStore(20, time.Minute)

	base := time.Unix(1700000000, 0)
	store.now = func() time.Time { return base }
	store.Append("stale", Turn{Role: RoleUser, Text: "old"})

	store.now = func() time.Time { return base.Add(30 * time.Second) }
	store.Append("fresh", Turn{Role: RoleUser, Text: "new"})

	evicted := store.evictIdle(base.Add(90 * time.Second))
	if evicted != 1 {
		t.Fatalf("expected 1 evicted session, got %d", evicted)
	}
	if store.Sessions() != 1 {
		t.Fatalf("expected 1 remaining session, got %d", store.Sessions())
	}
	if store.Len("fresh") != 1 {
		t.Fatal("fresh session should survive the sweep")
	}
}
