package directory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps identities in a mutex-guarded map. Readers run
// concurrently; writers are serialized per store.
type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]Identity
	order []uuid.UUID // insertion order, for stable listings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[uuid.UUID]Identity)}
}

// NewSeededStore returns a store preloaded with the demo directory: one
// full-access user and one read-only user.
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore()
	seed := []Identity{
		{
			ID:    uuid.MustParse("cba1b9da-7664-4022-9267-1de95f456865"),
			Name:  "John Doe",
			Email: "John.Doe@email.com",
			Level: FullAccess,
		},
		{
			ID:    uuid.MustParse("ebf28d90-3c1e-4e0a-89a3-32e8f84dc703"),
			Name:  "Jane Doe",
			Email: "Jane.Doe@email.com",
			Level: ReadOnly,
		},
	}
	for _, ident := range seed {
		_ = s.Add(context.Background(), ident)
	}
	return s
}

func (s *MemoryStore) List(ctx context.Context, name string) ([]Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Identity, 0, len(s.order))
	for _, id := range s.order {
		ident := s.byID[id]
		if name == "" || strings.EqualFold(ident.Name, name) {
			out = append(out, ident)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ident, ok := s.byID[id]
	if !ok {
		return Identity{}, ErrNotFound
	}
	return ident, nil
}

func (s *MemoryStore) Add(ctx context.Context, ident Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[ident.ID]; !ok {
		s.order = append(s.order, ident.ID)
	}
	s.byID[ident.ID] = ident
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, ident Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[ident.ID]; !ok {
		return ErrNotFound
	}
	s.byID[ident.ID] = ident
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
