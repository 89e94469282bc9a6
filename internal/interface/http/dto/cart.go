package dto

import (
	"github.com/bookshop-api/bookshop/internal/domain/cart"
)

// AddCartItemRequest puts a book in the cart. Quantity defaults to one.
type AddCartItemRequest struct {
	BookID   uint `json:"book_id"`
	Quantity *int `json:"quantity"`
}

// QuantityOrDefault returns the requested quantity, defaulting to 1.
func (r AddCartItemRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// CartItemResponse is the cart item projection.
type CartItemResponse struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	BookTitle string `json:"book_title"`
	Quantity  int    `json:"quantity"`
}

// NewCartItemResponse projects a domain cart item.
func NewCartItemResponse(it *cart.Item) *CartItemResponse {
	return &CartItemResponse{
		ID:        it.ID,
		BookID:    it.BookID,
		BookTitle: it.BookTitle,
		Quantity:  it.Quantity,
	}
}

// NewCartItemResponses projects a slice of domain cart items.
func NewCartItemResponses(items []*cart.Item) []*CartItemResponse {
	out := make([]*CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewCartItemResponse(it))
	}
	return out
}
