package repository

import (
	"context"
	"errors"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
)

// ErrNotFound is returned by GetByID when no record exists for the id.
var ErrNotFound = errors.New("record not found")

// Repository is the keyed-record store contract every entity type goes
// through. Implementations must be safe for concurrent use.
type Repository[T any] interface {
	Add(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	Query(ctx context.Context, match func(*T) bool) ([]*T, error)
}

// entityPtr ties a *T to the Entity interface so repositories can mint IDs.
type entityPtr[T any] interface {
	models.Entity
	*T
}
