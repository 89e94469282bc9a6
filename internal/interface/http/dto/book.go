package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	appbook "github.com/bookshop-api/bookshop/internal/application/book"
	"github.com/bookshop-api/bookshop/internal/domain/book"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

const dateLayout = "2006-01-02"

// CreateBookRequest is deliberately loose: every field binds without
// constraint so validation can report all problems at once, per field,
// instead of failing on the first binding tag.
//
// Price and rating bind as raw JSON so a non-numeric value becomes a field
// error instead of an unattributable bind failure.
type CreateBookRequest struct {
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	ISBN          *string         `json:"isbn"`
	PublisherID   *uint           `json:"publisher_id"`
	Price         json.RawMessage `json:"price"`
	Currency      *string         `json:"currency"`
	Stock         *int            `json:"stock"`
	Pages         *int            `json:"pages"`
	PublishedDate *string         `json:"published_date"`
	CoverURL      *string         `json:"cover_url"`
	Rating        json.RawMessage `json:"rating"`
	AuthorIDs     []uint          `json:"authors"`
	GenreIDs      []uint          `json:"genres"`
}

// Command validates the request and builds the typed create command.
func (r CreateBookRequest) Command() (appbook.CreateBookCommand, error) {
	fields := map[string][]string{}
	cmd := appbook.CreateBookCommand{
		PublisherID: r.PublisherID,
		Currency:    book.DefaultCurrency,
		AuthorIDs:   r.AuthorIDs,
		GenreIDs:    r.GenreIDs,
	}

	if r.Title == nil || *r.Title == "" {
		fields["title"] = append(fields["title"], "this field is required")
	} else {
		cmd.Title = *r.Title
	}
	if r.Description != nil {
		cmd.Description = *r.Description
	}
	if r.ISBN != nil {
		cmd.ISBN = *r.ISBN
	}

	if price, ok := requireDecimal(fields, "price", r.Price); ok {
		if price.IsNegative() {
			fields["price"] = append(fields["price"], "must be greater than or equal to 0")
		} else {
			cmd.Price = price
		}
	}

	if r.Currency != nil && *r.Currency != "" {
		cmd.Currency = *r.Currency
	}
	if r.Stock != nil {
		if *r.Stock < 0 {
			fields["stock"] = append(fields["stock"], "must be greater than or equal to 0")
		} else {
			cmd.Stock = *r.Stock
		}
	}

	if r.Pages == nil {
		fields["pages"] = append(fields["pages"], "this field is required")
	} else if *r.Pages <= 0 {
		fields["pages"] = append(fields["pages"], "must be a positive integer")
	} else {
		cmd.Pages = *r.Pages
	}

	if r.PublishedDate != nil && *r.PublishedDate != "" {
		d, err := time.Parse(dateLayout, *r.PublishedDate)
		if err != nil {
			fields["published_date"] = append(fields["published_date"], "date has wrong format; use YYYY-MM-DD")
		} else {
			cmd.PublishedDate = &d
		}
	}
	if r.CoverURL != nil {
		cmd.CoverURL = *r.CoverURL
	}

	if rating, ok := requireDecimal(fields, "rating", r.Rating); ok {
		if rating.IsNegative() || rating.GreaterThan(decimal.NewFromInt(5)) {
			fields["rating"] = append(fields["rating"], "must be between 0 and 5")
		} else {
			cmd.Rating = rating
		}
	}

	if len(fields) > 0 {
		return appbook.CreateBookCommand{}, apperrors.Validation(fields)
	}
	return cmd, nil
}

// UpdateBookRequest is the partial update payload. Raw JSON members
// distinguish three states for nullable fields: absent (keep), null
// (clear), value (set). Absent author/genre lists keep the stored sets.
type UpdateBookRequest struct {
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	ISBN          *string         `json:"isbn"`
	PublisherID   json.RawMessage `json:"publisher_id"`
	Price         json.RawMessage `json:"price"`
	Currency      *string         `json:"currency"`
	Stock         *int            `json:"stock"`
	Pages         *int            `json:"pages"`
	PublishedDate json.RawMessage `json:"published_date"`
	CoverURL      *string         `json:"cover_url"`
	Rating        json.RawMessage `json:"rating"`
	AuthorIDs     *[]uint         `json:"authors"`
	GenreIDs      *[]uint         `json:"genres"`
}

// Command validates the request and builds the typed update command for the
// given book ID.
func (r UpdateBookRequest) Command(id uint) (appbook.UpdateBookCommand, error) {
	fields := map[string][]string{}
	cmd := appbook.UpdateBookCommand{
		ID:        id,
		AuthorIDs: r.AuthorIDs,
		GenreIDs:  r.GenreIDs,
	}

	if r.Title != nil {
		if *r.Title == "" {
			fields["title"] = append(fields["title"], "may not be blank")
		} else {
			cmd.Fields.Title = r.Title
		}
	}
	cmd.Fields.Description = r.Description
	cmd.Fields.ISBN = r.ISBN

	if len(r.PublisherID) > 0 {
		if isJSONNull(r.PublisherID) {
			var cleared *uint
			cmd.Fields.PublisherID = &cleared
		} else {
			var pid uint
			if err := json.Unmarshal(r.PublisherID, &pid); err != nil {
				fields["publisher_id"] = append(fields["publisher_id"], "a valid integer is required")
			} else {
				p := &pid
				cmd.Fields.PublisherID = &p
			}
		}
	}

	if len(r.Price) > 0 {
		if price, err := parseDecimal(r.Price); err != nil {
			fields["price"] = append(fields["price"], "a valid decimal is required")
		} else if price.IsNegative() {
			fields["price"] = append(fields["price"], "must be greater than or equal to 0")
		} else {
			cmd.Fields.Price = &price
		}
	}

	if r.Currency != nil {
		if *r.Currency == "" {
			fields["currency"] = append(fields["currency"], "may not be blank")
		} else {
			cmd.Fields.Currency = r.Currency
		}
	}
	if r.Stock != nil {
		if *r.Stock < 0 {
			fields["stock"] = append(fields["stock"], "must be greater than or equal to 0")
		} else {
			cmd.Fields.Stock = r.Stock
		}
	}
	if r.Pages != nil {
		if *r.Pages <= 0 {
			fields["pages"] = append(fields["pages"], "must be a positive integer")
		} else {
			cmd.Fields.Pages = r.Pages
		}
	}

	if len(r.PublishedDate) > 0 {
		if isJSONNull(r.PublishedDate) {
			var cleared *time.Time
			cmd.Fields.PublishedDate = &cleared
		} else {
			var raw string
			err := json.Unmarshal(r.PublishedDate, &raw)
			var d time.Time
			if err == nil {
				d, err = time.Parse(dateLayout, raw)
			}
			if err != nil {
				fields["published_date"] = append(fields["published_date"], "date has wrong format; use YYYY-MM-DD")
			} else {
				p := &d
				cmd.Fields.PublishedDate = &p
			}
		}
	}
	cmd.Fields.CoverURL = r.CoverURL

	if len(r.Rating) > 0 {
		if rating, err := parseDecimal(r.Rating); err != nil {
			fields["rating"] = append(fields["rating"], "a valid decimal is required")
		} else if rating.IsNegative() || rating.GreaterThan(decimal.NewFromInt(5)) {
			fields["rating"] = append(fields["rating"], "must be between 0 and 5")
		} else {
			cmd.Fields.Rating = &rating
		}
	}

	if len(fields) > 0 {
		return appbook.UpdateBookCommand{}, apperrors.Validation(fields)
	}
	return cmd, nil
}

// BookResponse is the full book projection, served by the detail endpoint
// and by create and update. Price and rating serialize as fixed-point
// strings.
type BookResponse struct {
	ID            uint               `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	ISBN          string             `json:"isbn"`
	Publisher     *PublisherSummary  `json:"publisher"`
	Price         decimal.Decimal    `json:"price"`
	Currency      string             `json:"currency"`
	Stock         int                `json:"stock"`
	Pages         int                `json:"pages"`
	PublishedDate *string            `json:"published_date"`
	CoverURL      string             `json:"cover_url"`
	Rating        decimal.Decimal    `json:"rating"`
	CreatedAt     time.Time          `json:"created_at"`
	Authors       []AuthorSummary    `json:"authors"`
	Genres        []GenreResponse    `json:"genres"`
}

// AuthorSummary is the author as nested inside a book.
type AuthorSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BookCount int64  `json:"book_count"`
}

// PublisherSummary is the publisher as nested inside a book.
type PublisherSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewBookResponse projects a domain book.
func NewBookResponse(b *book.Book) *BookResponse {
	resp := &BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		ISBN:        b.ISBN,
		Price:       b.Price,
		Currency:    b.Currency,
		Stock:       b.Stock,
		Pages:       b.Pages,
		CoverURL:    b.CoverURL,
		Rating:      b.Rating,
		CreatedAt:   b.CreatedAt,
		Authors:     make([]AuthorSummary, 0, len(b.Authors)),
		Genres:      make([]GenreResponse, 0, len(b.Genres)),
	}
	if b.Publisher != nil {
		resp.Publisher = &PublisherSummary{ID: b.Publisher.ID, Name: b.Publisher.Name}
	}
	if b.PublishedDate != nil {
		d := b.PublishedDate.Format(dateLayout)
		resp.PublishedDate = &d
	}
	for _, a := range b.Authors {
		resp.Authors = append(resp.Authors, AuthorSummary{ID: a.ID, Name: a.Name, BookCount: a.BookCount})
	}
	for _, g := range b.Genres {
		resp.Genres = append(resp.Genres, GenreResponse{ID: g.ID, Name: g.Name})
	}
	return resp
}

// BookListResponse is the slimmer projection for list items and for books
// embedded in author and publisher detail. It drops the prose fields and
// timestamps of the full shape.
type BookListResponse struct {
	ID        uint              `json:"id"`
	Title     string            `json:"title"`
	Authors   []AuthorSummary   `json:"authors"`
	Publisher *PublisherSummary `json:"publisher"`
	Price     decimal.Decimal   `json:"price"`
	Currency  string            `json:"currency"`
	Stock     int               `json:"stock"`
	Rating    decimal.Decimal   `json:"rating"`
	Genres    []GenreResponse   `json:"genres"`
	CoverURL  string            `json:"cover_url"`
}

// NewBookListResponse projects a domain book into the list shape.
func NewBookListResponse(b *book.Book) *BookListResponse {
	resp := &BookListResponse{
		ID:       b.ID,
		Title:    b.Title,
		Price:    b.Price,
		Currency: b.Currency,
		Stock:    b.Stock,
		Rating:   b.Rating,
		CoverURL: b.CoverURL,
		Authors:  make([]AuthorSummary, 0, len(b.Authors)),
		Genres:   make([]GenreResponse, 0, len(b.Genres)),
	}
	if b.Publisher != nil {
		resp.Publisher = &PublisherSummary{ID: b.Publisher.ID, Name: b.Publisher.Name}
	}
	for _, a := range b.Authors {
		resp.Authors = append(resp.Authors, AuthorSummary{ID: a.ID, Name: a.Name, BookCount: a.BookCount})
	}
	for _, g := range b.Genres {
		resp.Genres = append(resp.Genres, GenreResponse{ID: g.ID, Name: g.Name})
	}
	return resp
}

// NewBookListResponses projects a slice of domain books into list items.
func NewBookListResponses(books []*book.Book) []*BookListResponse {
	out := make([]*BookListResponse, 0, len(books))
	for _, b := range books {
		out = append(out, NewBookListResponse(b))
	}
	return out
}

// parseDecimal accepts both JSON numbers and quoted decimal strings.
func parseDecimal(raw json.RawMessage) (decimal.Decimal, error) {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

func requireDecimal(fields map[string][]string, name string, raw json.RawMessage) (decimal.Decimal, bool) {
	if len(raw) == 0 || isJSONNull(raw) {
		fields[name] = append(fields[name], "this field is required")
		return decimal.Decimal{}, false
	}
	d, err := parseDecimal(raw)
	if err != nil {
		fields[name] = append(fields[name], "a valid decimal is required")
		return decimal.Decimal{}, false
	}
	return d, true
}

func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
