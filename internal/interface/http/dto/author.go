package dto

import (
	appauthor "github.com/bookshop-api/bookshop/internal/application/author"
	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/domain/book"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// CreateAuthorRequest is the author create payload.
type CreateAuthorRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	PhotoURL *string `json:"photo_url"`
}

// Entity validates the request and builds the author to store.
func (r CreateAuthorRequest) Entity() (*author.Author, error) {
	if r.Name == nil || *r.Name == "" {
		return nil, apperrors.Validation(map[string][]string{
			"name": {"this field is required"},
		})
	}
	a := &author.Author{Name: *r.Name}
	if r.Bio != nil {
		a.Bio = *r.Bio
	}
	if r.PhotoURL != nil {
		a.PhotoURL = *r.PhotoURL
	}
	return a, nil
}

// UpdateAuthorRequest is the partial author update payload.
type UpdateAuthorRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	PhotoURL *string `json:"photo_url"`
}

// Command validates the request and builds the update command.
func (r UpdateAuthorRequest) Command(id uint) (appauthor.UpdateAuthorCommand, error) {
	if r.Name != nil && *r.Name == "" {
		return appauthor.UpdateAuthorCommand{}, apperrors.Validation(map[string][]string{
			"name": {"may not be blank"},
		})
	}
	return appauthor.UpdateAuthorCommand{
		ID:       id,
		Name:     r.Name,
		Bio:      r.Bio,
		PhotoURL: r.PhotoURL,
	}, nil
}

// AuthorResponse is the author list projection.
type AuthorResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
	BookCount int64  `json:"book_count"`
}

// AuthorDetailResponse adds the author's books.
type AuthorDetailResponse struct {
	AuthorResponse
	Books []*BookListResponse `json:"books"`
}

// NewAuthorResponse projects a domain author.
func NewAuthorResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		PhotoURL:  a.PhotoURL,
		BookCount: a.BookCount,
	}
}

// NewAuthorResponses projects a slice of domain authors.
func NewAuthorResponses(authors []*author.Author) []*AuthorResponse {
	out := make([]*AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, NewAuthorResponse(a))
	}
	return out
}

// NewAuthorDetailResponse projects an author with their books.
func NewAuthorDetailResponse(a *author.Author, books []*book.Book) *AuthorDetailResponse {
	return &AuthorDetailResponse{
		AuthorResponse: *NewAuthorResponse(a),
		Books:          NewBookListResponses(books),
	}
}
