package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookshop-api/bookshop/internal/domain/order"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := &OrderModel{
		UserID:      o.UserID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		Items:       make([]OrderItemModel, len(o.Items)),
	}
	for i, it := range o.Items {
		model.Items[i] = OrderItemModel{
			BookID:    it.BookID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}

	// One Create persists the order and its items; inside a transaction the
	// whole batch commits or rolls back together.
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	for i := range model.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := dbFrom(ctx, r.db).Preload("Items").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query order")
	}
	return r.toEntity(ctx, &model)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	var models []OrderModel
	err := dbFrom(ctx, r.db).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query orders")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		o, err := r.toEntity(ctx, &models[i])
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}
	return orders, nil
}

func (r *orderRepository) CountByBook(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).
		Model(&OrderItemModel{}).
		Where("book_id = ?", bookID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count order items")
	}
	return count, nil
}

// toEntity converts the model and resolves the book titles the projection
// shows next to each item.
func (r *orderRepository) toEntity(ctx context.Context, model *OrderModel) (*order.Order, error) {
	titles, err := r.bookTitles(ctx, model.Items)
	if err != nil {
		return nil, err
	}

	o := &order.Order{
		ID:          model.ID,
		UserID:      model.UserID,
		Status:      order.Status(model.Status),
		TotalAmount: model.TotalAmount,
		Items:       make([]order.Item, len(model.Items)),
		CreatedAt:   model.CreatedAt,
	}
	for i, it := range model.Items {
		o.Items[i] = order.Item{
			ID:        it.ID,
			OrderID:   it.OrderID,
			BookID:    it.BookID,
			BookTitle: titles[it.BookID],
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return o, nil
}

func (r *orderRepository) bookTitles(ctx context.Context, items []OrderItemModel) (map[uint]string, error) {
	titles := make(map[uint]string)
	if len(items) == 0 {
		return titles, nil
	}

	ids := make([]uint, len(items))
	for i, it := range items {
		ids[i] = it.BookID
	}

	type titleRow struct {
		ID    uint
		Title string
	}
	var rows []titleRow
	err := dbFrom(ctx, r.db).
		Model(&BookModel{}).
		Select("id, title").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve book titles")
	}

	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}
