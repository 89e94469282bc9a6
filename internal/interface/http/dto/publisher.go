package dto

import (
	apppublisher "github.com/bookshop-api/bookshop/internal/application/publisher"
	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// CreatePublisherRequest is the publisher create payload.
type CreatePublisherRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
}

// Entity validates the request and builds the publisher to store.
func (r CreatePublisherRequest) Entity() (*publisher.Publisher, error) {
	if r.Name == nil || *r.Name == "" {
		return nil, apperrors.Validation(map[string][]string{
			"name": {"this field is required"},
		})
	}
	p := &publisher.Publisher{Name: *r.Name}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Website != nil {
		p.Website = *r.Website
	}
	return p, nil
}

// UpdatePublisherRequest is the partial publisher update payload.
type UpdatePublisherRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
}

// Command validates the request and builds the update command.
func (r UpdatePublisherRequest) Command(id uint) (apppublisher.UpdatePublisherCommand, error) {
	if r.Name != nil && *r.Name == "" {
		return apppublisher.UpdatePublisherCommand{}, apperrors.Validation(map[string][]string{
			"name": {"may not be blank"},
		})
	}
	return apppublisher.UpdatePublisherCommand{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
	}, nil
}

// PublisherResponse is the publisher list projection.
type PublisherResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// PublisherDetailResponse adds the publisher's books.
type PublisherDetailResponse struct {
	PublisherResponse
	Books []*BookListResponse `json:"books"`
}

// NewPublisherResponse projects a domain publisher.
func NewPublisherResponse(p *publisher.Publisher) *PublisherResponse {
	return &PublisherResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Website:     p.Website,
	}
}

// NewPublisherResponses projects a slice of domain publishers.
func NewPublisherResponses(publishers []*publisher.Publisher) []*PublisherResponse {
	out := make([]*PublisherResponse, 0, len(publishers))
	for _, p := range publishers {
		out = append(out, NewPublisherResponse(p))
	}
	return out
}

// NewPublisherDetailResponse projects a publisher with its books.
func NewPublisherDetailResponse(p *publisher.Publisher, books []*book.Book) *PublisherDetailResponse {
	return &PublisherDetailResponse{
		PublisherResponse: *NewPublisherResponse(p),
		Books:             NewBookListResponses(books),
	}
}
