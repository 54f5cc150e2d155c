package admin

import (
	"context"
	"sync"
	"time"
)

const sessionKeyPrefix = "admin:session:"

// SessionStore holds opaque admin session tokens with a TTL. Session state
// lives here rather than in handler-level variables so every instance of the
// service agrees on who is logged in.
type SessionStore interface {
	Create(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// Cache is the subset of the application cache the session store needs.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type cacheSessionStore struct {
	cache Cache
}

// NewCacheSessionStore backs sessions with the shared cache (Redis), so
// logins survive process restarts and hold across instances.
func NewCacheSessionStore(cache Cache) SessionStore {
	return &cacheSessionStore{cache: cache}
}

func (s *cacheSessionStore) Create(ctx context.Context, token string, ttl time.Duration) error {
	return s.cache.Set(ctx, sessionKeyPrefix+token, "1", ttl)
}

func (s *cacheSessionStore) Exists(ctx context.Context, token string) (bool, error) {
	value, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return false, err
	}

	return value != "", nil
}

func (s *cacheSessionStore) Delete(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	ops      uint64
}

// NewMemorySessionStore keeps sessions in process memory for deployments
// without Redis. Expired entries are swept opportunistically on writes.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]time.Time),
	}
}

func (s *memorySessionStore) Create(ctx context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = time.Now().Add(ttl)
	s.maybeSweepLocked()

	return nil
}

func (s *memorySessionStore) Exists(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return false, nil
	}

	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return false, nil
	}

	return true, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)

	return nil
}

// maybeSweepLocked drops expired sessions every 64 writes to keep the map
// from growing without bound. Caller must hold the mutex.
func (s *memorySessionStore) maybeSweepLocked() {
	s.ops++
	if s.ops%64 != 0 {
		return
	}

	now := time.Now()
	for token, expiry := range s.sessions {
		if now.After(expiry) {
			delete(s.sessions, token)
		}
	}
}
