package chat

import (
	"context"
	"sync"
	"time"
)

// DefaultHistoryLimit caps how many turns one session retains.
const DefaultHistoryLimit = 20

// session holds one conversation's history. All access goes through the
// session mutex so appends, snapshots and resets within a session are
// strictly ordered while distinct sessions proceed in parallel.
type session struct {
	mu         sync.Mutex
	turns      []Turn
	nextSeq    uint64
	lastActive time.Time
}

// HistoryStore owns bounded per-session conversation histories, keyed
// by session id. Sessions are created on first append and evicted after
// sitting idle longer than the TTL.
type HistoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	limit    int
	ttl      time.Duration
	now      func() time.Time
}

// NewHistoryStore builds a store with the given per-session turn limit
// and idle TTL. Non-positive values fall back to sane defaults.
func NewHistoryStore(limit int, ttl time.Duration) *HistoryStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &HistoryStore{
		sessions: make(map[string]*session),
		limit:    limit,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Append records a turn for the session, assigns its sequence number
// and trims the history to the configured limit, oldest turns first.
func (s *HistoryStore) Append(sessionID string, turn Turn) {
	sess := s.getOrCreate(sessionID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	turn.Sequence = sess.nextSeq
	sess.nextSeq++
	sess.turns = append(sess.turns, turn)
	if len(sess.turns) > s.limit {
		trimmed := make([]Turn, s.limit)
		copy(trimmed, sess.turns[len(sess.turns)-s.limit:])
		sess.turns = trimmed
	}
	sess.lastActive = s.now()
}

// Snapshot returns a copy of the session's turns, oldest first. Unknown
// sessions yield an empty snapshot without being created.
func (s *HistoryStore) Snapshot(sessionID string) []Turn {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]Turn, len(sess.turns))
	copy(out, sess.turns)
	return out
}

// Len reports how many turns the session currently holds.
func (s *HistoryStore) Len(sessionID string) int {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return 0
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return len(sess.turns)
}

// Reset clears the session's history. It is idempotent and shares the
// session lock with Append, so a reset racing an in-flight turn either
// runs before the append or clears it, never corrupts it.
func (s *HistoryStore) Reset(sessionID string) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.turns = nil
	sess.lastActive = s.now()
}

// Sessions reports how many sessions are currently tracked.
func (s *HistoryStore) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Janitor periodically evicts idle sessions until the context is done.
func (s *HistoryStore) Janitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle(s.now())
		}
	}
}

func (s *HistoryStore) evictIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastActive) > s.ttl
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *HistoryStore) getOrCreate(sessionID string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[sessionID]; ok {
		return sess
	}
	sess = &session{lastActive: s.now()}
	s.sessions[sessionID] = sess
	return sess
}
