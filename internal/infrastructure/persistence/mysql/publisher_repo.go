package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookshop-api/bookshop/internal/domain/publisher"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository creates the publisher repository.
func NewPublisherRepository(db *gorm.DB) publisher.Repository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(ctx context.Context, p *publisher.Publisher) error {
	model := &PublisherModel{Name: p.Name, Description: p.Description, Website: p.Website}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create publisher")
	}
	p.ID = model.ID
	return nil
}

func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	var model PublisherModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publisher.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query publisher")
	}
	return toPublisherEntity(&model), nil
}

func (r *publisherRepository) List(ctx context.Context) ([]*publisher.Publisher, error) {
	var models []PublisherModel
	if err := dbFrom(ctx, r.db).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to query publishers")
	}

	publishers := make([]*publisher.Publisher, len(models))
	for i := range models {
		publishers[i] = toPublisherEntity(&models[i])
	}
	return publishers, nil
}

func (r *publisherRepository) Update(ctx context.Context, p *publisher.Publisher) error {
	model := &PublisherModel{ID: p.ID, Name: p.Name, Description: p.Description, Website: p.Website}
	err := dbFrom(ctx, r.db).
		Model(&PublisherModel{}).
		Where("id = ?", p.ID).
		Select("name", "description", "website").
		Updates(model).Error
	if err != nil {
		return apperrors.Wrap(err, "failed to update publisher")
	}
	return nil
}

func (r *publisherRepository) Delete(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Delete(&PublisherModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete publisher")
	}
	if result.RowsAffected == 0 {
		return publisher.ErrNotFound
	}
	return nil
}

func (r *publisherRepository) CountBooks(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).
		Model(&BookModel{}).
		Where("publisher_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count publisher books")
	}
	return count, nil
}

func toPublisherEntity(model *PublisherModel) *publisher.Publisher {
	return &publisher.Publisher{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Website:     model.Website,
	}
}
