package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
)

// MemoryRepository keeps records in a mutex-guarded map. Used by tests and as
// the backend when no MongoDB is configured.
type MemoryRepository[T any, PT entityPtr[T]] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMemoryRepository[T any, PT entityPtr[T]]() *MemoryRepository[T, PT] {
	return &MemoryRepository[T, PT]{items: make(map[string]*T)}
}

func (r *MemoryRepository[T, PT]) Add(ctx context.Context, item *T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pt := PT(item)
	if pt.GetID() == "" {
		pt.SetID(primitive.NewObjectID().Hex())
	}
	r.items[pt.GetID()] = item
	return item, nil
}

func (r *MemoryRepository[T, PT]) Update(ctx context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := PT(item).GetID()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	r.items[id] = item
	return nil
}

func (r *MemoryRepository[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *MemoryRepository[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return item, nil
}

func (r *MemoryRepository[T, PT]) GetAll(ctx context.Context) ([]*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*T, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *MemoryRepository[T, PT]) Query(ctx context.Context, match func(*T) bool) ([]*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*T
	for _, item := range r.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

var _ Repository[models.Booking] = (*MemoryRepository[models.Booking, *models.Booking])(nil)
