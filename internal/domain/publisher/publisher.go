package publisher

import (
	"context"

	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// Publisher is a publishing house. Books hold a nullable reference to it.
type Publisher struct {
	ID          uint
	Name        string
	Description string
	Website     string
}

var (
	ErrNotFound = apperrors.NotFound("publisher")

	// ErrHasBooks blocks deletion while books still reference the publisher.
	ErrHasBooks = apperrors.Conflict("cannot delete publisher while it has books on the site; remove or reassign books first")
)

// Repository is the publisher store.
type Repository interface {
	Create(ctx context.Context, p *Publisher) error
	FindByID(ctx context.Context, id uint) (*Publisher, error)
	List(ctx context.Context) ([]*Publisher, error)
	Update(ctx context.Context, p *Publisher) error
	Delete(ctx context.Context, id uint) error

	// CountBooks returns the number of books referencing the publisher.
	CountBooks(ctx context.Context, id uint) (int64, error)
}
