package cache

import (
	"context"
	"sync"
	"time"
)

type (
	memoryStore struct {
		mu        sync.Mutex
		namespace string
		entries   map[string]memoryEntry
		closed    bool
		now       func() time.Time
	}

	memoryEntry struct {
		value     string
		expiresAt time.Time
	}
)

func newMemoryStore(namespace string, now func() time.Time) *memoryStore {
	return &memoryStore{
		namespace: namespace,
		entries:   make(map[string]memoryEntry),
		now:       now,
	}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", false, ErrClosed
	}
	entry, found := s.entries[s.Key(key)]
	if !found {
		return "", false, nil
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.entries, s.Key(key))
		return "", false, nil
	}
	return entry.value, true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.entries[s.Key(key)] = entry
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	delete(s.entries, s.Key(key))
	return nil
}

func (s *memoryStore) Key(key string) string {
	return namespacedKey(s.namespace, key)
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.entries = nil
	return nil
}
