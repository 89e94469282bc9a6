package book

import (
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

var (
	ErrNotFound = apperrors.NotFound("book")

	// ErrHasOrderItems blocks deletion while an order item references the
	// book; order history keeps its price snapshots intact.
	ErrHasOrderItems = apperrors.Conflict("cannot delete book while it appears in existing orders")
)
