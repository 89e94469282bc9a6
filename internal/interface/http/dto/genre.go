package dto

import (
	"github.com/bookshop-api/bookshop/internal/domain/genre"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// CreateGenreRequest is the genre create payload.
type CreateGenreRequest struct {
	Name *string `json:"name"`
}

// Entity validates the request and builds the genre to store.
func (r CreateGenreRequest) Entity() (*genre.Genre, error) {
	if r.Name == nil || *r.Name == "" {
		return nil, apperrors.Validation(map[string][]string{
			"name": {"this field is required"},
		})
	}
	return &genre.Genre{Name: *r.Name}, nil
}

// GenreResponse is the genre projection, standalone and nested in books.
type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewGenreResponses projects a slice of domain genres.
func NewGenreResponses(genres []*genre.Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, GenreResponse{ID: g.ID, Name: g.Name})
	}
	return out
}
