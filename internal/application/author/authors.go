package author

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/domain/book"
)

// ListAuthorsUseCase returns all authors, optionally filtered by a
// case-insensitive name substring.
type ListAuthorsUseCase struct {
	authorRepo author.Repository
}

// NewListAuthorsUseCase creates the use case.
func NewListAuthorsUseCase(authorRepo author.Repository) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorRepo: authorRepo}
}

// Execute lists authors with their book counts.
func (uc *ListAuthorsUseCase) Execute(ctx context.Context, nameQuery string) ([]*author.Author, error) {
	return uc.authorRepo.List(ctx, nameQuery)
}

// CreateAuthorUseCase persists a new author.
type CreateAuthorUseCase struct {
	authorRepo author.Repository
}

// NewCreateAuthorUseCase creates the use case.
func NewCreateAuthorUseCase(authorRepo author.Repository) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorRepo: authorRepo}
}

// Execute stores the author and returns it with the generated ID.
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, a *author.Author) (*author.Author, error) {
	if err := uc.authorRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAuthorUseCase loads an author together with their books for the detail
// projection.
type GetAuthorUseCase struct {
	authorRepo author.Repository
	bookRepo   book.Repository
}

// NewGetAuthorUseCase creates the use case.
func NewGetAuthorUseCase(authorRepo author.Repository, bookRepo book.Repository) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorRepo: authorRepo, bookRepo: bookRepo}
}

// Execute returns the author and the books linked to them.
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*author.Author, []*book.Book, error) {
	a, err := uc.authorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	books, err := uc.bookRepo.List(ctx, book.Filter{AuthorID: &id})
	if err != nil {
		return nil, nil, err
	}
	return a, books, nil
}

// UpdateAuthorUseCase applies a partial update to an author's fields.
type UpdateAuthorUseCase struct {
	authorRepo author.Repository
}

// NewUpdateAuthorUseCase creates the use case.
func NewUpdateAuthorUseCase(authorRepo author.Repository) *UpdateAuthorUseCase {
	return &UpdateAuthorUseCase{authorRepo: authorRepo}
}

// UpdateAuthorCommand carries the fields to change; nil means keep.
type UpdateAuthorCommand struct {
	ID       uint
	Name     *string
	Bio      *string
	PhotoURL *string
}

// Execute merges the command into the stored author and persists it.
func (uc *UpdateAuthorUseCase) Execute(ctx context.Context, cmd UpdateAuthorCommand) (*author.Author, error) {
	a, err := uc.authorRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		a.Name = *cmd.Name
	}
	if cmd.Bio != nil {
		a.Bio = *cmd.Bio
	}
	if cmd.PhotoURL != nil {
		a.PhotoURL = *cmd.PhotoURL
	}

	if err := uc.authorRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAuthorUseCase removes an author, refusing while books still link to
// them.
type DeleteAuthorUseCase struct {
	authorRepo author.Repository
}

// NewDeleteAuthorUseCase creates the use case.
func NewDeleteAuthorUseCase(authorRepo author.Repository) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{authorRepo: authorRepo}
}

// Execute deletes the author with the given ID.
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) error {
	count, err := uc.authorRepo.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return author.ErrHasBooks
	}
	return uc.authorRepo.Delete(ctx, id)
}
