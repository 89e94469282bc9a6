package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/bookshop-api/bookshop/internal/domain/cart"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Add(ctx context.Context, item *cart.Item) error {
	model := &CartItemModel{
		UserID:   item.UserID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to add cart item")
	}
	item.ID = model.ID
	return nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]*cart.Item, error) {
	var models []CartItemModel
	err := dbFrom(ctx, r.db).Where("user_id = ?", userID).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query cart items")
	}

	titles, err := r.bookTitles(ctx, models)
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, len(models))
	for i, m := range models {
		items[i] = &cart.Item{
			ID:        m.ID,
			UserID:    m.UserID,
			BookID:    m.BookID,
			BookTitle: titles[m.BookID],
			Quantity:  m.Quantity,
		}
	}
	return items, nil
}

func (r *cartRepository) Delete(ctx context.Context, userID, id uint) error {
	result := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&CartItemModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return cart.ErrNotFound
	}
	return nil
}

func (r *cartRepository) bookTitles(ctx context.Context, models []CartItemModel) (map[uint]string, error) {
	titles := make(map[uint]string)
	if len(models) == 0 {
		return titles, nil
	}

	ids := make([]uint, len(models))
	for i, m := range models {
		ids[i] = m.BookID
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
