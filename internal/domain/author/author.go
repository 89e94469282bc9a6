package author

import (
	"context"

	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// Author is a writer listed in the catalog. BookCount is a computed
// projection value, filled by the repository on reads and never stored.
type Author struct {
	ID        uint
	Name      string
	Bio       string
	PhotoURL  string
	BookCount int64
}

// Domain errors.
var (
	ErrNotFound = apperrors.NotFound("author")

	// ErrHasBooks blocks deletion while the author is still attached to
	// books. Distinct from validation: the input is fine, the state forbids
	// the mutation.
	ErrHasBooks = apperrors.Conflict("cannot delete author while they have books on the site; remove or reassign books first")
)

// Repository is the author store. Implemented by the mysql package.
type Repository interface {
	// Create persists the author and backfills the generated ID.
	Create(ctx context.Context, a *Author) error

	// FindByID returns the author with its book count, or ErrNotFound.
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByIDs returns the authors matching ids, in no particular order.
	// Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uint) ([]*Author, error)

	// List returns all authors with book counts, optionally filtered by a
	// case-insensitive name substring.
	List(ctx context.Context, nameQuery string) ([]*Author, error)

	// Update persists the author's scalar fields.
	Update(ctx context.Context, a *Author) error

	// Delete removes the author row, or ErrNotFound.
	Delete(ctx context.Context, id uint) error

	// CountBooks returns the number of books linked to the author.
	CountBooks(ctx context.Context, id uint) (int64, error)
}
