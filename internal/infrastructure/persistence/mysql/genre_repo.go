package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/bookshop-api/bookshop/internal/domain/genre"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates the genre repository.
func NewGenreRepository(db *gorm.DB) genre.Repository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, g *genre.Genre) error {
	model := &GenreModel{Name: g.Name}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return genre.ErrDuplicateName
		}
		return apperrors.Wrap(err, "failed to create genre")
	}
	g.ID = model.ID
	return nil
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []uint) ([]*genre.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []GenreModel
	if err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to query genres")
	}

	genres := make([]*genre.Genre, len(models))
	for i := range models {
		genres[i] = &genre.Genre{ID: models[i].ID, Name: models[i].Name}
	}
	return genres, nil
}

func (r *genreRepository) List(ctx context.Context) ([]*genre.Genre, error) {
	var models []GenreModel
	if err := dbFrom(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to query genres")
	}

	genres := make([]*genre.Genre, len(models))
	for i := range models {
		genres[i] = &genre.Genre{ID: models[i].ID, Name: models[i].Name}
	}
	return genres, nil
}
