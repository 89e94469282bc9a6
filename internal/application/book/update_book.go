package book

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/genre"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
	"github.com/bookshop-api/bookshop/internal/infrastructure/persistence/mysql"
)

// UpdateBookUseCase applies a partial update to a book. Scalar fields the
// command leaves unset keep their stored values; when the command carries
// author or genre IDs the whole association set is replaced with them.
type UpdateBookUseCase struct {
	bookRepo  book.Repository
	refs      referenceChecker
	txManager *mysql.TxManager
}

// NewUpdateBookUseCase creates the use case.
func NewUpdateBookUseCase(
	bookRepo book.Repository,
	authorRepo author.Repository,
	genreRepo genre.Repository,
	publisherRepo publisher.Repository,
	txManager *mysql.TxManager,
) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookRepo: bookRepo,
		refs: referenceChecker{
			authorRepo:    authorRepo,
			genreRepo:     genreRepo,
			publisherRepo: publisherRepo,
		},
		txManager: txManager,
	}
}

// Execute loads the book, validates any referenced IDs, then writes the
// merged scalar row and replaced association sets in one transaction.
func (uc *UpdateBookUseCase) Execute(ctx context.Context, cmd UpdateBookCommand) (*book.Book, error) {
	entity, err := uc.bookRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	var checkPublisher *uint
	if cmd.Fields.PublisherID != nil && *cmd.Fields.PublisherID != nil {
		checkPublisher = *cmd.Fields.PublisherID
	}
	var checkAuthors, checkGenres []uint
	if cmd.AuthorIDs != nil {
		checkAuthors = *cmd.AuthorIDs
	}
	if cmd.GenreIDs != nil {
		checkGenres = *cmd.GenreIDs
	}
	if err := uc.refs.check(ctx, checkPublisher, checkAuthors, checkGenres); err != nil {
		return nil, err
	}

	cmd.Fields.Apply(entity)

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.bookRepo.Update(txCtx, entity); err != nil {
			return err
		}
		if cmd.AuthorIDs != nil {
			if err := uc.bookRepo.ReplaceAuthors(txCtx, entity.ID, *cmd.AuthorIDs); err != nil {
				return err
			}
		}
		if cmd.GenreIDs != nil {
			if err := uc.bookRepo.ReplaceGenres(txCtx, entity.ID, *cmd.GenreIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.bookRepo.FindByID(ctx, entity.ID)
}
