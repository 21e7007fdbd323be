package mem

import (
	"context"
	"sync"
	"time"
)

// TokenDenylist remembers revoked token ids until the token would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type MemoryDenylist struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *MemoryDenylist) Revoke(_ context.Context, jti string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.data[jti] = until
	return nil
}

func (s *MemoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	until, ok := s.data[jti]
	if !ok {
		return false, nil
	}
	return s.now().Before(until), nil
}

// sweepLocked drops expired entries. Caller holds the write lock.
func (s *MemoryDenylist) sweepLocked() {
	now := s.now()
	for k, until := range s.data {
		if !now.Before(until) {
			delete(s.data, k)
		}
	}
}

func (s *MemoryDenylist) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
