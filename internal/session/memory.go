package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	searchSeq int64
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory with a TTL. It is meant for
// development and tests; deployments with more than one replica use the
// Redis store instead.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.live(id)
	if entry == nil || entry.data == nil {
		return nil, nil
	}

	// Round-trip through JSON so callers never share a pointer with the store.
	var s State
	if err := json.Unmarshal(entry.data, &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal state: %w", err)
	}
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *State) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("session: missing session id")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal state: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.live(s.ID)
	if entry == nil {
		entry = &memoryEntry{}
		m.entries[s.ID] = entry
	}
	entry.data = data
	entry.expiresAt = m.now().Add(m.ttl)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *MemoryStore) NextSearchSeq(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.live(id)
	if entry == nil {
		entry = &memoryEntry{}
		m.entries[id] = entry
	}
	entry.searchSeq++
	if entry.expiresAt.IsZero() {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	return entry.searchSeq, nil
}

func (m *MemoryStore) SearchSeq(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.live(id)
	if entry == nil {
		return 0, nil
	}
	return entry.searchSeq, nil
}

// live returns the entry for id, dropping it first if its TTL has passed.
// Callers must hold the mutex.
func (m *MemoryStore) live(id string) *memoryEntry {
	entry, ok := m.entries[id]
	if !ok {
		return nil
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		delete(m.entries, id)
		return nil
	}
	return entry
}
