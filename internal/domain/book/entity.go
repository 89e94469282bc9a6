package book

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/domain/genre"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
)

// DefaultCurrency is applied when a create request omits the currency code.
const DefaultCurrency = "UAH"

// Book is the catalog aggregate. Authors and Genres are loaded through the
// explicit association tables; Publisher is a nullable reference that is
// cleared, not cascaded, when the publisher is removed.
//
// Price and Rating are fixed-point with two decimal places. Stock is a plain
// stored integer; nothing decrements it on order creation.
type Book struct {
	ID            uint
	Title         string
	Description   string
	ISBN          string
	PublisherID   *uint
	Publisher     *publisher.Publisher
	Price         decimal.Decimal
	Currency      string
	Stock         int
	Pages         int
	PublishedDate *time.Time
	CoverURL      string
	Rating        decimal.Decimal
	CreatedAt     time.Time

	Authors []author.Author
	Genres  []genre.Genre
}

// Update carries a partial scalar update: nil pointers leave the stored
// field untouched. Association sets are replaced separately (see
// Repository.ReplaceAuthors / ReplaceGenres).
type Update struct {
	Title         *string
	Description   *string
	ISBN          *string
	PublisherID   **uint // outer nil = untouched, inner nil = clear reference
	Price         *decimal.Decimal
	Currency      *string
	Stock         *int
	Pages         *int
	PublishedDate **time.Time
	CoverURL      *string
	Rating        *decimal.Decimal
}

// Apply merges the supplied fields into the book.
func (u Update) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
	if u.ISBN != nil {
		b.ISBN = *u.ISBN
	}
	if u.PublisherID != nil {
		b.PublisherID = *u.PublisherID
	}
	if u.Price != nil {
		b.Price = *u.Price
	}
	if u.Currency != nil {
		b.Currency = *u.Currency
	}
	if u.Stock != nil {
		b.Stock = *u.Stock
	}
	if u.Pages != nil {
		b.Pages = *u.Pages
	}
	if u.PublishedDate != nil {
		b.PublishedDate = *u.PublishedDate
	}
	if u.CoverURL != nil {
		b.CoverURL = *u.CoverURL
	}
	if u.Rating != nil {
		b.Rating = *u.Rating
	}
}
