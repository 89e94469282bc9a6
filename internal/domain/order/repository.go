package order

import (
	"context"

	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

var ErrNotFound = apperrors.NotFound("order")

// Repository is the order store.
type Repository interface {
	// Create persists the order and its items in one statement batch.
	Create(ctx context.Context, o *Order) error

	// FindByID returns the order with items, or ErrNotFound.
	FindByID(ctx context.Context, id uint) (*Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)

	// CountByBook returns how many order items reference the book. Book
	// deletion is blocked while this is non-zero.
	CountByBook(ctx context.Context, bookID uint) (int64, error)
}
