package cart

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/cart"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// AddToCartUseCase puts a book in the user's cart.
type AddToCartUseCase struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewAddToCartUseCase creates the use case.
func NewAddToCartUseCase(cartRepo cart.Repository, bookRepo book.Repository) *AddToCartUseCase {
	return &AddToCartUseCase{cartRepo: cartRepo, bookRepo: bookRepo}
}

// Execute validates the book and quantity and stores the cart item.
func (uc *AddToCartUseCase) Execute(ctx context.Context, userID, bookID uint, quantity int) (*cart.Item, error) {
	fields := map[string][]string{}
	if quantity <= 0 {
		fields["quantity"] = append(fields["quantity"], "must be positive")
	}

	b, err := uc.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			fields["book_id"] = append(fields["book_id"], "book does not exist")
		} else {
			return nil, err
		}
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	item := &cart.Item{
		UserID:    userID,
		BookID:    bookID,
		BookTitle: b.Title,
		Quantity:  quantity,
	}
	if err := uc.cartRepo.Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListCartUseCase returns the user's cart contents.
type ListCartUseCase struct {
	cartRepo cart.Repository
}

// NewListCartUseCase creates the use case.
func NewListCartUseCase(cartRepo cart.Repository) *ListCartUseCase {
	return &ListCartUseCase{cartRepo: cartRepo}
}

// Execute lists the user's cart items.
func (uc *ListCartUseCase) Execute(ctx context.Context, userID uint) ([]*cart.Item, error) {
	return uc.cartRepo.ListByUser(ctx, userID)
}

// RemoveFromCartUseCase deletes one of the user's cart items.
type RemoveFromCartUseCase struct {
	cartRepo cart.Repository
}

// NewRemoveFromCartUseCase creates the use case.
func NewRemoveFromCartUseCase(cartRepo cart.Repository) *RemoveFromCartUseCase {
	return &RemoveFromCartUseCase{cartRepo: cartRepo}
}

// Execute removes the item; items of other users are invisible.
func (uc *RemoveFromCartUseCase) Execute(ctx context.Context, userID, itemID uint) error {
	return uc.cartRepo.Delete(ctx, userID, itemID)
}
