package draftstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"cinema-checkout/internal/data/entity"
)

// MemoryStore is the single-node default and the test double. Drafts are
// stored as JSON copies so callers never share a mutable pointer with the
// store, matching the Redis round-trip semantics.
type MemoryStore struct {
	mu      sync.RWMutex
	drafts  map[string]memoryEntry
	ttl     time.Duration
	nowFunc func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		drafts:  make(map[string]memoryEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*entity.CheckoutDraft, error) {
	s.mu.RLock()
	entry, ok := s.drafts[token]
	s.mu.RUnlock()

	if !ok || s.nowFunc().After(entry.expiresAt) {
		return nil, ErrDraftNotFound
	}

	var draft entity.CheckoutDraft
	if err := json.Unmarshal(entry.data, &draft); err != nil {
		return nil, err
	}

	return &draft, nil
}

func (s *MemoryStore) Put(ctx context.Context, token string, draft *entity.CheckoutDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.drafts[token] = memoryEntry{
		data:      data,
		expiresAt: s.nowFunc().Add(s.ttl),
	}
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.drafts, token)
	s.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)
