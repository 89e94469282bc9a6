package book

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/book"
)

// ListBooksUseCase returns the catalog filtered and sorted per the query.
type ListBooksUseCase struct {
	bookRepo book.Repository
}

// NewListBooksUseCase creates the use case.
func NewListBooksUseCase(bookRepo book.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo}
}

// Execute lists books matching the filter.
func (uc *ListBooksUseCase) Execute(ctx context.Context, filter book.Filter) ([]*book.Book, error) {
	return uc.bookRepo.List(ctx, filter)
}

// GetBookUseCase loads a single book with its associations.
type GetBookUseCase struct {
	bookRepo book.Repository
}

// NewGetBookUseCase creates the use case.
func NewGetBookUseCase(bookRepo book.Repository) *GetBookUseCase {
	return &GetBookUseCase{bookRepo: bookRepo}
}

// Execute returns the book with the given ID or book.ErrNotFound.
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*book.Book, error) {
	return uc.bookRepo.FindByID(ctx, id)
}
