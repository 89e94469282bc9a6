package book

import (
	"context"
	"fmt"

	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/domain/genre"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// referenceChecker rejects attached identifiers that do not exist, as
// field-level validation errors rather than store-level failures. Shared by
// the create and update use cases.
type referenceChecker struct {
	authorRepo    author.Repository
	genreRepo     genre.Repository
	publisherRepo publisher.Repository
}

func (c referenceChecker) check(ctx context.Context, publisherID *uint, authorIDs, genreIDs []uint) error {
	fields := map[string][]string{}

	if publisherID != nil {
		if _, err := c.publisherRepo.FindByID(ctx, *publisherID); err != nil {
			if !apperrors.IsKind(err, apperrors.KindNotFound) {
				return err
			}
			fields["publisher_id"] = append(fields["publisher_id"],
				fmt.Sprintf("publisher %d does not exist", *publisherID))
		}
	}

	missing, err := c.missingAuthorIDs(ctx, authorIDs)
	if err != nil {
		return err
	}
	for _, id := range missing {
		fields["authors"] = append(fields["authors"], fmt.Sprintf("author %d does not exist", id))
	}

	missing, err = c.missingGenreIDs(ctx, genreIDs)
	if err != nil {
		return err
	}
	for _, id := range missing {
		fields["genres"] = append(fields["genres"], fmt.Sprintf("genre %d does not exist", id))
	}

	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}

func (c referenceChecker) missingAuthorIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found, err := c.authorRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	have := make(map[uint]bool, len(found))
	for _, a := range found {
		have[a.ID] = true
	}
	var missing []uint
	for _, id := range ids {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (c referenceChecker) missingGenreIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found, err := c.genreRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	have := make(map[uint]bool, len(found))
	for _, g := range found {
		have[g.ID] = true
	}
	var missing []uint
	for _, id := range ids {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
