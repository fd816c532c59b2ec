// Package blog holds the article resource: the repository contract, the
// in-memory implementation, and the validated mutation path.
package blog

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

type Article struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

var ErrNotFound = errors.New("article not found")

// Repository is the persistence contract for articles. Implementations
// must be safe for concurrent use.
type Repository interface {
	List(ctx context.Context) ([]Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (Article, error)
	Add(ctx context.Context, a Article) error
	Update(ctx context.Context, a Article) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]Article
	order []uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[uuid.UUID]Article)}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Article, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return Article{}, ErrNotFound
	}
	return a, nil
}

func (r *MemoryRepository) Add(ctx context.Context, a Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; !ok {
		r.order = append(r.order, a.ID)
	}
	r.byID[a.ID] = a
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, a Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
