package order

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/order"
)

// ListOrdersUseCase returns the requesting user's orders.
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase creates the use case.
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute lists the user's orders, newest first.
func (uc *ListOrdersUseCase) Execute(ctx context.Context, userID uint) ([]*order.Order, error) {
	return uc.orderRepo.ListByUser(ctx, userID)
}

// GetOrderUseCase loads one order. Non-admins only see their own; an order
// belonging to someone else answers as if it did not exist.
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase creates the use case.
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute returns the order when the requester may see it.
func (uc *GetOrderUseCase) Execute(ctx context.Context, id, userID uint, isAdmin bool) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		return nil, order.ErrNotFound
	}
	return o, nil
}
