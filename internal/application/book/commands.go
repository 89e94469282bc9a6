package book

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookshop-api/bookshop/internal/domain/book"
)

// CreateBookCommand is a fully validated create request. Field presence and
// format are checked while the command is built (see the http dto package);
// the use case only verifies that referenced identifiers exist.
type CreateBookCommand struct {
	Title         string
	Description   string
	ISBN          string
	PublisherID   *uint
	Price         decimal.Decimal
	Currency      string
	Stock         int
	Pages         int
	PublishedDate *time.Time
	CoverURL      string
	Rating        decimal.Decimal

	// Attached additively; the book is new so there is nothing to replace.
	AuthorIDs []uint
	GenreIDs  []uint
}

// UpdateBookCommand is a partial update. Scalars travel in the embedded
// book.Update (nil = untouched). A non-nil AuthorIDs or GenreIDs replaces
// the book's entire association set; an empty slice clears it.
type UpdateBookCommand struct {
	ID     uint
	Fields book.Update

	AuthorIDs *[]uint
	GenreIDs  *[]uint
}
