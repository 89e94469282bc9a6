package order

import (
	"context"
	"fmt"

	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/order"
	"github.com/bookshop-api/bookshop/internal/infrastructure/persistence/mysql"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// CreateOrderUseCase places an order for the authenticated user. Unit
// prices are snapshotted from the catalog at creation time, never taken
// from the client, so a later price change cannot rewrite order history.
type CreateOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager *mysql.TxManager
}

// NewCreateOrderUseCase creates the use case.
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	txManager *mysql.TxManager,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// CreateOrderRequest is the placement request. UserID comes from the
// access token, never from the body.
type CreateOrderRequest struct {
	UserID uint
	Items  []CreateOrderItem
}

// CreateOrderItem is one requested line.
type CreateOrderItem struct {
	BookID   uint
	Quantity int
}

// Execute validates the lines, snapshots prices and persists the order.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*order.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.Validation(map[string][]string{
			"items": {"at least one item is required"},
		})
	}

	var itemErrs []string
	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			itemErrs = append(itemErrs, fmt.Sprintf("quantity for book %d must be positive", line.BookID))
			continue
		}
		b, err := uc.bookRepo.FindByID(ctx, line.BookID)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				itemErrs = append(itemErrs, fmt.Sprintf("book %d does not exist", line.BookID))
				continue
			}
			return nil, err
		}
		items = append(items, order.Item{
			BookID:    b.ID,
			BookTitle: b.Title,
			Quantity:  line.Quantity,
			UnitPrice: b.Price,
		})
	}
	if len(itemErrs) > 0 {
		return nil, apperrors.Validation(map[string][]string{"items": itemErrs})
	}

	o := order.NewOrder(req.UserID, items)
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.orderRepo.Create(txCtx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}
