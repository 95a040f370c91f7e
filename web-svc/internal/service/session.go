package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"restaurant-recommender/logging"
	"restaurant-recommender/metrics"

	"github.com/google/uuid"
)

// Session is the page-scoped context a prediction runs in. Its cache lives
// exactly as long as the session does.
type Session struct {
	ID    string
	Cache PredictionCache

	// mu keeps a single resolution in flight per session.
	mu sync.Mutex
	// lastUsed is unix nanoseconds.
	lastUsed atomic.Int64
}

func NewSession(id string, cache PredictionCache) *Session {
	session := &Session{ID: id, Cache: cache}
	session.touch(time.Now())
	return session
}

func (s *Session) touch(now time.Time) {
	s.lastUsed.Store(now.UnixNano())
}

func (s *Session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastUsed.Load()))
}

// SessionStore keeps open sessions in memory. Sessions idle for longer than
// ttl are reclaimed by Sweep; ttl <= 0 keeps them until Close.
type SessionStore struct {
	caches CacheFactory
	ttl    time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore(caches CacheFactory, ttl time.Duration) *SessionStore {
	return &SessionStore{
		caches:   caches,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

func (s *SessionStore) Get(_ context.Context, id string) (*Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		session.touch(time.Now())
	}
	return session, ok
}

func (s *SessionStore) Open(_ context.Context) (*Session, error) {
	id := uuid.NewString()
	session := NewSession(id, s.caches.NewCache(id))

	s.mu.Lock()
	s.sessions[id] = session
	count := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(count))
	logging.Debug().Str("session", id).Msg("session opened")
	return session, nil
}

// Close discards the session and its cache. Unknown ids are not an error.
func (s *SessionStore) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return nil
	}
	metrics.ActiveSessions.Set(float64(count))
	logging.Debug().Str("session", id).Msg("session closed")
	return session.Cache.Discard(ctx)
}

// Sweep discards every session idle for longer than the store's ttl as of
// now and returns how many were reclaimed.
func (s *SessionStore) Sweep(ctx context.Context, now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	var idle []*Session
	s.mu.Lock()
	for id, session := range s.sessions {
		if session.idleSince(now) > s.ttl {
			idle = append(idle, session)
			delete(s.sessions, id)
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if len(idle) == 0 {
		return 0
	}
	metrics.ActiveSessions.Set(float64(count))
	for _, session := range idle {
		if err := session.Cache.Discard(ctx); err != nil {
			logging.Warn().Err(err).Str("session", session.ID).Msg("failed to discard idle session cache")
		}
	}
	logging.Debug().Int("reclaimed", len(idle)).Msg("idle sessions swept")
	return len(idle)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(ctx, now)
		}
	}
}
