package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the capability set shared by every user-owned entity.
// Get and Delete return the entity's not-found error when the row is absent
// or owned by someone else.
type Repository[T any] interface {
	Get(ctx context.Context, id, userID uuid.UUID) (T, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// Transactor runs fn inside a single store transaction. Repository calls
// made with the ctx passed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
