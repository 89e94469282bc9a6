package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusCreated   Status = "created"
	StatusShipped   Status = "shipped"
	StatusCancelled Status = "cancelled"
)

// Order belongs to one user and aggregates items. TotalAmount is computed
// server-side from the item snapshots at creation time.
type Order struct {
	ID          uint
	UserID      uint
	Status      Status
	TotalAmount decimal.Decimal
	Items       []Item
	CreatedAt   time.Time
}

// Item references a book and stores a unit-price snapshot taken when the
// order was created. The snapshot is never recomputed from the book's live
// price.
type Item struct {
	ID        uint
	OrderID   uint
	BookID    uint
	BookTitle string // projection convenience, filled on reads
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewOrder assembles an order in the created state, totalling the item
// snapshots.
func NewOrder(userID uint, items []Item) *Order {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return &Order{
		UserID:      userID,
		Status:      StatusCreated,
		TotalAmount: total,
		Items:       items,
		CreatedAt:   time.Now(),
	}
}
