package dto

import (
	"time"

	"github.com/shopspring/decimal"

	apporder "github.com/bookshop-api/bookshop/internal/application/order"
	"github.com/bookshop-api/bookshop/internal/domain/order"
)

// CreateOrderRequest is the order placement payload. Quantities and book
// existence are validated by the use case so all line problems report
// together.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
}

// Command builds the placement request for the authenticated user.
func (r CreateOrderRequest) Command(userID uint) apporder.CreateOrderRequest {
	items := make([]apporder.CreateOrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, apporder.CreateOrderItem{BookID: it.BookID, Quantity: it.Quantity})
	}
	return apporder.CreateOrderRequest{UserID: userID, Items: items}
}

// OrderResponse is the order projection.
type OrderResponse struct {
	ID          uint                `json:"id"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

// OrderItemResponse is one order line with its price snapshot.
type OrderItemResponse struct {
	ID        uint            `json:"id"`
	BookID    uint            `json:"book_id"`
	BookTitle string          `json:"book_title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewOrderResponse projects a domain order.
func NewOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:        it.ID,
			BookID:    it.BookID,
			BookTitle: it.BookTitle,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &OrderResponse{
		ID:          o.ID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		Items:       items,
		CreatedAt:   o.CreatedAt,
	}
}

// NewOrderResponses projects a slice of domain orders.
func NewOrderResponses(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
