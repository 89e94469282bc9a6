package book

import (
	"context"
)

// Sort is a list ordering key. Anything other than the four explicit keys
// leaves the store order untouched.
type Sort string

const (
	SortNone      Sort = ""
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortTitleAsc  Sort = "title_asc"
	SortTitleDesc Sort = "title_desc"
)

// ParseSort maps a raw query value to a Sort. ok is false for unknown keys;
// the empty string is valid and means no ordering.
func ParseSort(raw string) (Sort, bool) {
	switch Sort(raw) {
	case SortNone, SortPriceAsc, SortPriceDesc, SortTitleAsc, SortTitleDesc:
		return Sort(raw), true
	default:
		return SortNone, false
	}
}

// Filter is the list query. Zero-valued members impose no constraint and
// present members compose with AND.
type Filter struct {
	// Query keeps a book when its title or any linked author's name
	// contains the term, case-insensitively.
	Query string

	// PublisherID keeps books whose publisher reference equals it exactly.
	PublisherID *uint

	// Genre keeps books having a genre whose name matches it exactly,
	// case-insensitively.
	Genre string

	// AuthorID keeps books linked to the author. Used by the author detail
	// projection, not exposed as a query parameter.
	AuthorID *uint

	Sort Sort
}

// Repository is the book store. Reads eagerly load authors, genres and the
// publisher, and fill each author's BookCount. Implemented by the mysql
// package; association writes operate on the explicit join tables.
type Repository interface {
	// Create persists the scalar fields only and backfills ID/CreatedAt.
	Create(ctx context.Context, b *Book) error

	// FindByID returns the full book with associations, or ErrNotFound.
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update persists the book's scalar fields.
	Update(ctx context.Context, b *Book) error

	// Delete removes the book row together with its association rows and
	// cart items, or returns ErrNotFound.
	Delete(ctx context.Context, id uint) error

	// List returns books matching the filter, each appearing exactly once.
	List(ctx context.Context, f Filter) ([]*Book, error)

	// AddAuthors inserts association rows; additive, for fresh books.
	AddAuthors(ctx context.Context, bookID uint, authorIDs []uint) error

	// AddGenres inserts association rows; additive, for fresh books.
	AddGenres(ctx context.Context, bookID uint, genreIDs []uint) error

	// ReplaceAuthors makes authorIDs the book's entire author set: rows not
	// in the list are removed, new ones inserted. An empty list clears it.
	ReplaceAuthors(ctx context.Context, bookID uint, authorIDs []uint) error

	// ReplaceGenres is ReplaceAuthors for genres.
	ReplaceGenres(ctx context.Context, bookID uint, genreIDs []uint) error
}
