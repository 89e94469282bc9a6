package publisher

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
)

// ListPublishersUseCase returns all publishers.
type ListPublishersUseCase struct {
	publisherRepo publisher.Repository
}

// NewListPublishersUseCase creates the use case.
func NewListPublishersUseCase(publisherRepo publisher.Repository) *ListPublishersUseCase {
	return &ListPublishersUseCase{publisherRepo: publisherRepo}
}

// Execute lists publishers.
func (uc *ListPublishersUseCase) Execute(ctx context.Context) ([]*publisher.Publisher, error) {
	return uc.publisherRepo.List(ctx)
}

// CreatePublisherUseCase persists a new publisher.
type CreatePublisherUseCase struct {
	publisherRepo publisher.Repository
}

// NewCreatePublisherUseCase creates the use case.
func NewCreatePublisherUseCase(publisherRepo publisher.Repository) *CreatePublisherUseCase {
	return &CreatePublisherUseCase{publisherRepo: publisherRepo}
}

// Execute stores the publisher and returns it with the generated ID.
func (uc *CreatePublisherUseCase) Execute(ctx context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	if err := uc.publisherRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPublisherUseCase loads a publisher with the books it publishes.
type GetPublisherUseCase struct {
	publisherRepo publisher.Repository
	bookRepo      book.Repository
}

// NewGetPublisherUseCase creates the use case.
func NewGetPublisherUseCase(publisherRepo publisher.Repository, bookRepo book.Repository) *GetPublisherUseCase {
	return &GetPublisherUseCase{publisherRepo: publisherRepo, bookRepo: bookRepo}
}

// Execute returns the publisher and the books referencing it.
func (uc *GetPublisherUseCase) Execute(ctx context.Context, id uint) (*publisher.Publisher, []*book.Book, error) {
	p, err := uc.publisherRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	books, err := uc.bookRepo.List(ctx, book.Filter{PublisherID: &id})
	if err != nil {
		return nil, nil, err
	}
	return p, books, nil
}

// UpdatePublisherUseCase applies a partial update.
type UpdatePublisherUseCase struct {
	publisherRepo publisher.Repository
}

// NewUpdatePublisherUseCase creates the use case.
func NewUpdatePublisherUseCase(publisherRepo publisher.Repository) *UpdatePublisherUseCase {
	return &UpdatePublisherUseCase{publisherRepo: publisherRepo}
}

// UpdatePublisherCommand carries the fields to change; nil means keep.
type UpdatePublisherCommand struct {
	ID          uint
	Name        *string
	Description *string
	Website     *string
}

// Execute merges the command into the stored publisher and persists it.
func (uc *UpdatePublisherUseCase) Execute(ctx context.Context, cmd UpdatePublisherCommand) (*publisher.Publisher, error) {
	p, err := uc.publisherRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		p.Name = *cmd.Name
	}
	if cmd.Description != nil {
		p.Description = *cmd.Description
	}
	if cmd.Website != nil {
		p.Website = *cmd.Website
	}

	if err := uc.publisherRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePublisherUseCase removes a publisher, refusing while books still
// reference it.
type DeletePublisherUseCase struct {
	publisherRepo publisher.Repository
}

// NewDeletePublisherUseCase creates the use case.
func NewDeletePublisherUseCase(publisherRepo publisher.Repository) *DeletePublisherUseCase {
	return &DeletePublisherUseCase{publisherRepo: publisherRepo}
}

// Execute deletes the publisher with the given ID.
func (uc *DeletePublisherUseCase) Execute(ctx context.Context, id uint) error {
	count, err := uc.publisherRepo.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return publisher.ErrHasBooks
	}
	return uc.publisherRepo.Delete(ctx, id)
}
