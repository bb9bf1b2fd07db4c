package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type tokenEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

func (e tokenEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

type memoryTokenStore struct {
	mu      sync.RWMutex
	entries map[string]tokenEntry
}

func NewMemoryTokenStore() RefreshTokenStore {
	return &memoryTokenStore{
		entries: make(map[string]tokenEntry),
	}
}

func (s *memoryTokenStore) Save(_ context.Context, jti string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[jti] = tokenEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memoryTokenStore) UserID(_ context.Context, jti string) (uuid.UUID, error) {
	s.mu.RLock()
	entry, ok := s.entries[jti]
	s.mu.RUnlock()

	if !ok || entry.isExpired() {
		if ok && entry.isExpired() {
			s.mu.Lock()
			delete(s.entries, jti)
			s.mu.Unlock()
		}
		return uuid.Nil, nil
	}
	return entry.userID, nil
}

func (s *memoryTokenStore) Revoke(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, jti)
	return nil
}
