package cart

import (
	"context"

	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// Item is one book in a user's cart. Rows are removed automatically when
// either the user or the book is deleted.
type Item struct {
	ID        uint
	UserID    uint
	BookID    uint
	BookTitle string // projection convenience, filled on reads
	Quantity  int
}

var ErrNotFound = apperrors.NotFound("cart item")

// Repository is the cart store.
type Repository interface {
	Add(ctx context.Context, item *Item) error
	ListByUser(ctx context.Context, userID uint) ([]*Item, error)

	// Delete removes the user's cart item, or ErrNotFound. Scoped by user
	// so one user cannot remove another's rows.
	Delete(ctx context.Context, userID, id uint) error
}
