package mysql

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/genre"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
)

type catalogFixture struct {
	db       *gorm.DB
	books    book.Repository
	authors  author.Repository
	genres   genre.Repository
	pubs     publisher.Repository
	orwell   *author.Author
	sonia    *author.Author
	huxley   *author.Author
	herbert  *author.Author
	secker   *publisher.Publisher
	chatto   *publisher.Publisher
	dystopia *genre.Genre
	scifi    *genre.Genre

	nineteen *book.Book // Nineteen Eighty-Four: orwell, secker, dystopia
	farm     *book.Book // Animal Farm: orwell, secker, dystopia
	brave    *book.Book // Brave New World: huxley, chatto, dystopia+scifi
	dune     *book.Book // Dune: herbert, no publisher, scifi
	essays   *book.Book // Collected Essays: orwell+sonia, secker, no genre
}

func seedCatalog(t *testing.T) *catalogFixture {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)

	f := &catalogFixture{
		db:      db,
		books:   NewBookRepository(db),
		authors: NewAuthorRepository(db),
		genres:  NewGenreRepository(db),
		pubs:    NewPublisherRepository(db),
	}

	f.orwell = &author.Author{Name: "George Orwell"}
	f.sonia = &author.Author{Name: "Sonia Orwell"}
	f.huxley = &author.Author{Name: "Aldous Huxley"}
	f.herbert = &author.Author{Name: "Frank Herbert"}
	for _, a := range []*author.Author{f.orwell, f.sonia, f.huxley, f.herbert} {
		require.NoError(t, f.authors.Create(ctx, a))
	}

	f.secker = &publisher.Publisher{Name: "Secker & Warburg"}
	f.chatto = &publisher.Publisher{Name: "Chatto & Windus"}
	for _, p := range []*publisher.Publisher{f.secker, f.chatto} {
		require.NoError(t, f.pubs.Create(ctx, p))
	}

	f.dystopia = &genre.Genre{Name: "Dystopia"}
	f.scifi = &genre.Genre{Name: "Science Fiction"}
	for _, g := range []*genre.Genre{f.dystopia, f.scifi} {
		require.NoError(t, f.genres.Create(ctx, g))
	}

	f.nineteen = f.addBook(t, "Nineteen Eighty-Four", "12.50", &f.secker.ID,
		[]uint{f.orwell.ID}, []uint{f.dystopia.ID})
	f.farm = f.addBook(t, "Animal Farm", "8.00", &f.secker.ID,
		[]uint{f.orwell.ID}, []uint{f.dystopia.ID})
	f.brave = f.addBook(t, "Brave New World", "10.00", &f.chatto.ID,
		[]uint{f.huxley.ID}, []uint{f.dystopia.ID, f.scifi.ID})
	f.dune = f.addBook(t, "Dune", "15.99", nil,
		[]uint{f.herbert.ID}, []uint{f.scifi.ID})
	f.essays = f.addBook(t, "Collected Essays", "20.00", &f.secker.ID,
		[]uint{f.orwell.ID, f.sonia.ID}, nil)
	return f
}

func (f *catalogFixture) addBook(t *testing.T, title, price string, pubID *uint, authorIDs, genreIDs []uint) *book.Book {
	t.Helper()
	ctx := context.Background()

	b := &book.Book{
		Title:       title,
		PublisherID: pubID,
		Price:       decimal.RequireFromString(price),
		Currency:    book.DefaultCurrency,
		Pages:       200,
		Rating:      decimal.RequireFromString("4.00"),
	}
	require.NoError(t, f.books.Create(ctx, b))
	require.NoError(t, f.books.AddAuthors(ctx, b.ID, authorIDs))
	require.NoError(t, f.books.AddGenres(ctx, b.ID, genreIDs))
	return b
}

func listTitles(books []*book.Book) []string {
	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}
	return titles
}

func TestBookRepositoryFreeTextFilter(t *testing.T) {
	f := seedCatalog(t)
	ctx := context.Background()

	// Title match, case-insensitive.
	books, err := f.books.List(ctx, book.Filter{Query: "brave"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Brave New World"}, listTitles(books))

	// Author-name match pulls in every book of the author.
	books, err = f.books.List(ctx, book.Filter{Query: "ORWELL"})
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"Nineteen Eighty-Four", "Animal Farm", "Collected Essays"},
		listTitles(books))

	// Two matching authors on one book must not duplicate it.
	seen := map[uint]int{}
	for _, b := range books {
		seen[b.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "book %d listed more than once", id)
	}

	books, err = f.books.List(ctx, book.Filter{Query: "no such book"})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookRepositoryFilterCompose(t *testing.T) {
	f := seedCatalog(t)
	ctx := context.Background()

	books, err := f.books.List(ctx, book.Filter{PublisherID: &f.secker.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"Nineteen Eighty-Four", "Animal Farm", "Collected Essays"},
		listTitles(books))

	// Genre matches the exact name, case-insensitively, never a substring.
	books, err = f.books.List(ctx, book.Filter{Genre: "dystopia"})
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"Nineteen Eighty-Four", "Animal Farm", "Brave New World"},
		listTitles(books))

	books, err = f.books.List(ctx, book.Filter{Genre: "Dysto"})
	require.NoError(t, err)
	assert.Empty(t, books)

	// Filters AND together.
	books, err = f.books.List(ctx, book.Filter{Query: "orwell", Genre: "dystopia"})
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"Nineteen Eighty-Four", "Animal Farm"},
		listTitles(books))

	books, err = f.books.List(ctx, book.Filter{AuthorID: &f.sonia.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Collected Essays"}, listTitles(books))
}

func TestBookRepositorySort(t *testing.T) {
	f := seedCatalog(t)
	ctx := context.Background()

	books, err := f.books.List(ctx, book.Filter{Sort: book.SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Animal Farm", "Brave New World", "Nineteen Eighty-Four", "Dune", "Collected Essays"},
		listTitles(books))

	books, err = f.books.List(ctx, book.Filter{Sort: book.SortTitleDesc})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Nineteen Eighty-Four", "Dune", "Collected Essays", "Brave New World", "Animal Farm"},
		listTitles(books))
}

func TestBookRepositoryFindByID(t *testing.T) {
	f := seedCatalog(t)
	ctx := context.Background()

	b, err := f.books.FindByID(ctx, f.nineteen.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nineteen Eighty-Four", b.Title)
	require.NotNil(t, b.Publisher)
	assert.Equal(t, "Secker & Warburg", b.Publisher.Name)
	require.Len(t, b.Authors, 1)
	assert.Equal(t, "George Orwell", b.Authors[0].Name)
	assert.Equal(t, int64(3), b.Authors[0].BookCount)
	require.Len(t, b.Genres, 1)
	assert.Equal(t, "Dystopia", b.Genres[0].Name)
	assert.True(t, b.Price.Equal(decimal.RequireFromString("12.50")))

	_, err = f.books.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, book.ErrNotFound)
}

func TestBookRepositoryUpdateForcesZeroValues(t *testing.T) {
	f := seedCatalog(t)
	ctx := context.Background()

	b, err := f.books.FindByID(ctx, f.brave.ID)
	require.NoError(t, err)

	b.Description = ""
	b.PublisherID = nil
	b.Stock = 0
	require.NoError(t, f.books.Update(ctx, b))

	got, err := f.books.FindByID(ctx, f.brave.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Description)
	assert.Nil(t, got.PublisherID)
	assert.Nil(t, got.Publisher)

	// Associations stay untouched by a scalar update.
	assert.Len(t, got.Authors, 1)
	assert.Len(t, got.Genres, 2)
}

func TestBookRepositoryReplaceAssociations(t *testing.T) {
	f := seedCatalog(t)
	ctx := context.Background()

	require.NoError(t, f.books.ReplaceAuthors(ctx, f.dune.ID, []uint{f.orwell.ID, f.huxley.ID}))
	b, err := f.books.FindByID(ctx, f.dune.ID)
	require.NoError(t, err)
	names := []string{}
	for _, a := range b.Authors {
		names = append(names, a.Name)
	}
	assert.ElementsMatch(t, []string{"George Orwell", "Aldous Huxley"}, names)

	// Replacing with an overlapping set keeps the survivor linked once.
	require.NoError(t, f.books.ReplaceAuthors(ctx, f.dune.ID, []uint{f.huxley.ID}))
	b, err = f.books.FindByID(ctx, f.dune.ID)
	require.NoError(t, err)
	require.Len(t, b.Authors, 1)
	assert.Equal(t, "Aldous Huxley", b.Authors[0].Name)

	// The empty set clears everything.
	require.NoError(t, f.books.ReplaceGenres(ctx, f.brave.ID, nil))
	b, err = f.books.FindByID(ctx, f.brave.ID)
	require.NoError(t, err)
	assert.Empty(t, b.Genres)
}

func TestBookRepositoryDelete(t *testing.T) {
	f := seedCatalog(t)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&CartItemModel{UserID: 1, BookID: f.farm.ID, Quantity: 2}).Error)

	require.NoError(t, f.books.Delete(ctx, f.farm.ID))

	_, err := f.books.FindByID(ctx, f.farm.ID)
	assert.ErrorIs(t, err, book.ErrNotFound)

	var links int64
	require.NoError(t, f.db.Model(&BookAuthorModel{}).Where("book_id = ?", f.farm.ID).Count(&links).Error)
	assert.Zero(t, links)
	require.NoError(t, f.db.Model(&CartItemModel{}).Where("book_id = ?", f.farm.ID).Count(&links).Error)
	assert.Zero(t, links)

	assert.ErrorIs(t, f.books.Delete(ctx, 9999), book.ErrNotFound)
}
