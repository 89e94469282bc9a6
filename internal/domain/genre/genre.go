package genre

import (
	"context"

	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// Genre is a unique catalog category name.
type Genre struct {
	ID   uint
	Name string
}

var (
	ErrNotFound      = apperrors.NotFound("genre")
	ErrDuplicateName = apperrors.Conflict("genre with this name already exists")
)

// Repository is the genre store.
type Repository interface {
	// Create persists the genre; a duplicate name yields ErrDuplicateName.
	Create(ctx context.Context, g *Genre) error

	// FindByIDs returns the genres matching ids; missing ids are absent.
	FindByIDs(ctx context.Context, ids []uint) ([]*Genre, error)

	List(ctx context.Context) ([]*Genre, error)
}
