package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bookshop-api/bookshop/internal/domain/author"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates the author repository.
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{Name: a.Name, Bio: a.Bio, PhotoURL: a.PhotoURL}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create author")
	}
	a.ID = model.ID
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query author")
	}

	count, err := r.CountBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorEntity(&model, count), nil
}

func (r *authorRepository) FindByIDs(ctx context.Context, ids []uint) ([]*author.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []AuthorModel
	if err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to query authors")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i], 0)
	}
	return authors, nil
}

func (r *authorRepository) List(ctx context.Context, nameQuery string) ([]*author.Author, error) {
	query := dbFrom(ctx, r.db).Model(&AuthorModel{})
	if nameQuery != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(nameQuery)+"%")
	}

	var models []AuthorModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to query authors")
	}

	// One grouped count for the whole page instead of a count per author.
	repo := &bookRepository{db: r.db}
	ids := make([]uint, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	counts, err := repo.authorBookCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i], counts[models[i].ID])
	}
	return authors, nil
}

func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{ID: a.ID, Name: a.Name, Bio: a.Bio, PhotoURL: a.PhotoURL}
	err := dbFrom(ctx, r.db).
		Model(&AuthorModel{}).
		Where("id = ?", a.ID).
		Select("name", "bio", "photo_url").
		Updates(model).Error
	if err != nil {
		return apperrors.Wrap(err, "failed to update author")
	}
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete author")
	}
	if result.RowsAffected == 0 {
		return author.ErrNotFound
	}
	return nil
}

func (r *authorRepository) CountBooks(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).
		Model(&BookAuthorModel{}).
		Where("author_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count author books")
	}
	return count, nil
}

func toAuthorEntity(model *AuthorModel, bookCount int64) *author.Author {
	return &author.Author{
		ID:        model.ID,
		Name:      model.Name,
		Bio:       model.Bio,
		PhotoURL:  model.PhotoURL,
		BookCount: bookCount,
	}
}
