package book

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/genre"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
	"github.com/bookshop-api/bookshop/internal/infrastructure/persistence/mysql"
)

// CreateBookUseCase persists a new book and attaches its author and genre
// links. Validation happens before anything is written, so a rejected
// request never leaves a partial book behind; the row and its association
// rows commit in one transaction.
type CreateBookUseCase struct {
	bookRepo  book.Repository
	refs      referenceChecker
	txManager *mysql.TxManager
}

// NewCreateBookUseCase creates the use case.
func NewCreateBookUseCase(
	bookRepo book.Repository,
	authorRepo author.Repository,
	genreRepo genre.Repository,
	publisherRepo publisher.Repository,
	txManager *mysql.TxManager,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookRepo: bookRepo,
		refs: referenceChecker{
			authorRepo:    authorRepo,
			genreRepo:     genreRepo,
			publisherRepo: publisherRepo,
		},
		txManager: txManager,
	}
}

// Execute runs the create and returns the stored book, reloaded with its
// associations so the caller projects exactly what was persisted.
func (uc *CreateBookUseCase) Execute(ctx context.Context, cmd CreateBookCommand) (*book.Book, error) {
	// A repeated ID in the payload means the same link once; the join
	// tables key on (book, author) and (book, genre).
	cmd.AuthorIDs = uniqueIDs(cmd.AuthorIDs)
	cmd.GenreIDs = uniqueIDs(cmd.GenreIDs)

	if err := uc.refs.check(ctx, cmd.PublisherID, cmd.AuthorIDs, cmd.GenreIDs); err != nil {
		return nil, err
	}

	entity := &book.Book{
		Title:         cmd.Title,
		Description:   cmd.Description,
		ISBN:          cmd.ISBN,
		PublisherID:   cmd.PublisherID,
		Price:         cmd.Price,
		Currency:      cmd.Currency,
		Stock:         cmd.Stock,
		Pages:         cmd.Pages,
		PublishedDate: cmd.PublishedDate,
		CoverURL:      cmd.CoverURL,
		Rating:        cmd.Rating,
	}

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.bookRepo.Create(txCtx, entity); err != nil {
			return err
		}
		if err := uc.bookRepo.AddAuthors(txCtx, entity.ID, cmd.AuthorIDs); err != nil {
			return err
		}
		return uc.bookRepo.AddGenres(txCtx, entity.ID, cmd.GenreIDs)
	})
	if err != nil {
		return nil, err
	}

	return uc.bookRepo.FindByID(ctx, entity.ID)
}

// uniqueIDs drops repeated IDs, keeping first-seen order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	var out []uint
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
