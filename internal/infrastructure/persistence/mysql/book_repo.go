package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/genre"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

// bookRepository implements book.Repository over GORM. Reads eagerly load
// authors, genres and the publisher so the projection layer never issues
// per-row lookups; association writes touch the join tables directly.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates the book repository.
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:         b.Title,
		Description:   b.Description,
		ISBN:          b.ISBN,
		PublisherID:   b.PublisherID,
		Price:         b.Price,
		Currency:      b.Currency,
		Stock:         b.Stock,
		Pages:         b.Pages,
		PublishedDate: b.PublishedDate,
		CoverURL:      b.CoverURL,
		Rating:        b.Rating,
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create book")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFrom(ctx, r.db).
		Preload("Authors").
		Preload("Genres").
		Preload("Publisher").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query book")
	}

	counts, err := r.authorBookCounts(ctx, authorIDs(model.Authors))
	if err != nil {
		return nil, err
	}
	return toBookEntity(&model, counts), nil
}

// scalarColumns is the column set a scalar update touches. Forcing the list
// makes zero values (empty title on purpose, cleared publisher) stick, and
// keeps association fields out of Save's reach.
var scalarColumns = []string{
	"title", "description", "isbn", "publisher_id", "price", "currency",
	"stock", "pages", "published_date", "cover_url", "rating",
}

func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		ISBN:          b.ISBN,
		PublisherID:   b.PublisherID,
		Price:         b.Price,
		Currency:      b.Currency,
		Stock:         b.Stock,
		Pages:         b.Pages,
		PublishedDate: b.PublishedDate,
		CoverURL:      b.CoverURL,
		Rating:        b.Rating,
	}

	err := dbFrom(ctx, r.db).
		Model(&BookModel{}).
		Where("id = ?", b.ID).
		Select(scalarColumns).
		Updates(model).Error
	if err != nil {
		return apperrors.Wrap(err, "failed to update book")
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	db := dbFrom(ctx, r.db)

	// Association rows and cart items go with the book; order items block
	// deletion upstream and are never touched here.
	if err := db.Where("book_id = ?", id).Delete(&BookAuthorModel{}).Error; err != nil {
		return apperrors.Wrap(err, "failed to delete book author links")
	}
	if err := db.Where("book_id = ?", id).Delete(&BookGenreModel{}).Error; err != nil {
		return apperrors.Wrap(err, "failed to delete book genre links")
	}
	if err := db.Where("book_id = ?", id).Delete(&CartItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, "failed to delete cart items")
	}

	result := db.Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return book.ErrNotFound
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context, f book.Filter) ([]*book.Book, error) {
	query := dbFrom(ctx, r.db).
		Model(&BookModel{}).
		Preload("Authors").
		Preload("Genres").
		Preload("Publisher")

	joined := false

	// Free-text term: title OR any linked author name, case-insensitive.
	// The author join can multiply rows, hence DISTINCT below.
	if f.Query != "" {
		term := "%" + strings.ToLower(f.Query) + "%"
		query = query.
			Joins("LEFT JOIN book_authors ON book_authors.book_id = books.id").
			Joins("LEFT JOIN authors ON authors.id = book_authors.author_id").
			Where("LOWER(books.title) LIKE ? OR LOWER(authors.name) LIKE ?", term, term)
		joined = true
	}

	if f.PublisherID != nil {
		query = query.Where("books.publisher_id = ?", *f.PublisherID)
	}

	// Exact genre name match, case-insensitive (not a substring).
	if f.Genre != "" {
		query = query.
			Joins("JOIN book_genres ON book_genres.book_id = books.id").
			Joins("JOIN genres ON genres.id = book_genres.genre_id").
			Where("LOWER(genres.name) = ?", strings.ToLower(f.Genre))
		joined = true
	}

	// Aliased so it coexists with the free-text author join.
	if f.AuthorID != nil {
		query = query.
			Joins("JOIN book_authors AS author_links ON author_links.book_id = books.id").
			Where("author_links.author_id = ?", *f.AuthorID)
		joined = true
	}

	if joined {
		query = query.Distinct("books.*")
	}

	switch f.Sort {
	case book.SortPriceAsc:
		query = query.Order("books.price ASC")
	case book.SortPriceDesc:
		query = query.Order("books.price DESC")
	case book.SortTitleAsc:
		query = query.Order("books.title ASC")
	case book.SortTitleDesc:
		query = query.Order("books.title DESC")
	}
	// No sort key: store order, stable within a response only.

	var models []BookModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to query books")
	}

	ids := make([]uint, 0)
	for i := range models {
		ids = append(ids, authorIDs(models[i].Authors)...)
	}
	counts, err := r.authorBookCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i], counts)
	}
	return books, nil
}

func (r *bookRepository) AddAuthors(ctx context.Context, bookID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	rows := make([]BookAuthorModel, len(ids))
	for i, id := range ids {
		rows[i] = BookAuthorModel{BookID: bookID, AuthorID: id}
	}
	if err := dbFrom(ctx, r.db).Create(&rows).Error; err != nil {
		return apperrors.Wrap(err, "failed to attach authors")
	}
	return nil
}

func (r *bookRepository) AddGenres(ctx context.Context, bookID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	rows := make([]BookGenreModel, len(ids))
	for i, id := range ids {
		rows[i] = BookGenreModel{BookID: bookID, GenreID: id}
	}
	if err := dbFrom(ctx, r.db).Create(&rows).Error; err != nil {
		return apperrors.Wrap(err, "failed to attach genres")
	}
	return nil
}

func (r *bookRepository) ReplaceAuthors(ctx context.Context, bookID uint, ids []uint) error {
	db := dbFrom(ctx, r.db)

	if len(ids) == 0 {
		if err := db.Where("book_id = ?", bookID).Delete(&BookAuthorModel{}).Error; err != nil {
			return apperrors.Wrap(err, "failed to clear author links")
		}
		return nil
	}

	if err := db.Where("book_id = ? AND author_id NOT IN ?", bookID, ids).
		Delete(&BookAuthorModel{}).Error; err != nil {
		return apperrors.Wrap(err, "failed to remove author links")
	}

	var existing []uint
	if err := db.Model(&BookAuthorModel{}).
		Where("book_id = ?", bookID).
		Pluck("author_id", &existing).Error; err != nil {
		return apperrors.Wrap(err, "failed to read author links")
	}

	missing := diffIDs(ids, existing)
	return r.AddAuthors(ctx, bookID, missing)
}

func (r *bookRepository) ReplaceGenres(ctx context.Context, bookID uint, ids []uint) error {
	db := dbFrom(ctx, r.db)

	if len(ids) == 0 {
		if err := db.Where("book_id = ?", bookID).Delete(&BookGenreModel{}).Error; err != nil {
			return apperrors.Wrap(err, "failed to clear genre links")
		}
		return nil
	}

	if err := db.Where("book_id = ? AND genre_id NOT IN ?", bookID, ids).
		Delete(&BookGenreModel{}).Error; err != nil {
		return apperrors.Wrap(err, "failed to remove genre links")
	}

	var existing []uint
	if err := db.Model(&BookGenreModel{}).
		Where("book_id = ?", bookID).
		Pluck("genre_id", &existing).Error; err != nil {
		return apperrors.Wrap(err, "failed to read genre links")
	}

	missing := diffIDs(ids, existing)
	return r.AddGenres(ctx, bookID, missing)
}

// authorBookCounts returns link counts per author, recomputed on every read
// so projections always reflect current membership.
func (r *bookRepository) authorBookCounts(ctx context.Context, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	if len(ids) == 0 {
		return counts, nil
	}

	type countRow struct {
		AuthorID uint
		Total    int64
	}
	var rows []countRow
	err := dbFrom(ctx, r.db).
		Model(&BookAuthorModel{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", ids).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count author books")
	}

	for _, row := range rows {
		counts[row.AuthorID] = row.Total
	}
	return counts, nil
}

func authorIDs(models []AuthorModel) []uint {
	ids := make([]uint, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	return ids
}

// diffIDs returns wanted IDs not present in existing, deduplicated.
func diffIDs(wanted, existing []uint) []uint {
	have := make(map[uint]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}
	var missing []uint
	for _, id := range wanted {
		if !have[id] {
			have[id] = true
			missing = append(missing, id)
		}
	}
	return missing
}

func toBookEntity(model *BookModel, counts map[uint]int64) *book.Book {
	b := &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Description:   model.Description,
		ISBN:          model.ISBN,
		PublisherID:   model.PublisherID,
		Price:         model.Price,
		Currency:      model.Currency,
		Stock:         model.Stock,
		Pages:         model.Pages,
		PublishedDate: model.PublishedDate,
		CoverURL:      model.CoverURL,
		Rating:        model.Rating,
		CreatedAt:     model.CreatedAt,
		Authors:       make([]author.Author, len(model.Authors)),
		Genres:        make([]genre.Genre, len(model.Genres)),
	}

	for i, a := range model.Authors {
		b.Authors[i] = author.Author{
			ID:        a.ID,
			Name:      a.Name,
			Bio:       a.Bio,
			PhotoURL:  a.PhotoURL,
			BookCount: counts[a.ID],
		}
	}
	for i, g := range model.Genres {
		b.Genres[i] = genre.Genre{ID: g.ID, Name: g.Name}
	}
	if model.Publisher != nil {
		b.Publisher = &publisher.Publisher{
			ID:          model.Publisher.ID,
			Name:        model.Publisher.Name,
			Description: model.Publisher.Description,
			Website:     model.Publisher.Website,
		}
	}
	return b
}
