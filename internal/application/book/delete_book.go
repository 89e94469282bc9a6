package book

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/order"
	"github.com/bookshop-api/bookshop/internal/infrastructure/persistence/mysql"
)

// DeleteBookUseCase removes a book together with its association and cart
// rows. Books referenced by order items stay put so order history keeps
// resolving.
type DeleteBookUseCase struct {
	bookRepo  book.Repository
	orderRepo order.Repository
	txManager *mysql.TxManager
}

// NewDeleteBookUseCase creates the use case.
func NewDeleteBookUseCase(bookRepo book.Repository, orderRepo order.Repository, txManager *mysql.TxManager) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookRepo: bookRepo, orderRepo: orderRepo, txManager: txManager}
}

// Execute deletes the book with the given ID.
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	count, err := uc.orderRepo.CountByBook(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return book.ErrHasOrderItems
	}

	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.bookRepo.Delete(txCtx, id)
	})
}
