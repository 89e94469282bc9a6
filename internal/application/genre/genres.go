package genre

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/genre"
)

// ListGenresUseCase returns all genres.
type ListGenresUseCase struct {
	genreRepo genre.Repository
}

// NewListGenresUseCase creates the use case.
func NewListGenresUseCase(genreRepo genre.Repository) *ListGenresUseCase {
	return &ListGenresUseCase{genreRepo: genreRepo}
}

// Execute lists genres.
func (uc *ListGenresUseCase) Execute(ctx context.Context) ([]*genre.Genre, error) {
	return uc.genreRepo.List(ctx)
}

// CreateGenreUseCase persists a new genre. Name uniqueness rides on the
// store's unique index.
type CreateGenreUseCase struct {
	genreRepo genre.Repository
}

// NewCreateGenreUseCase creates the use case.
func NewCreateGenreUseCase(genreRepo genre.Repository) *CreateGenreUseCase {
	return &CreateGenreUseCase{genreRepo: genreRepo}
}

// Execute stores the genre and returns it with the generated ID.
func (uc *CreateGenreUseCase) Execute(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	if err := uc.genreRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
