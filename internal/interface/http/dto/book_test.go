package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/domain/genre"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
)

func decodeCreate(t *testing.T, body string) CreateBookRequest {
	t.Helper()
	var req CreateBookRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func decodeUpdate(t *testing.T, body string) UpdateBookRequest {
	t.Helper()
	var req UpdateBookRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestCreateBookCommandDefaults(t *testing.T) {
	req := decodeCreate(t, `{
		"title": "Dune",
		"price": "15.99",
		"pages": 412,
		"rating": 4.5,
		"authors": [1],
		"genres": [2, 3]
	}`)

	cmd, err := req.Command()
	require.NoError(t, err)
	assert.Equal(t, "Dune", cmd.Title)
	assert.True(t, cmd.Price.Equal(decimal.RequireFromString("15.99")))
	assert.Equal(t, book.DefaultCurrency, cmd.Currency)
	assert.Zero(t, cmd.Stock)
	assert.Equal(t, 412, cmd.Pages)
	assert.True(t, cmd.Rating.Equal(decimal.RequireFromString("4.5")))
	assert.Equal(t, []uint{1}, cmd.AuthorIDs)
	assert.Equal(t, []uint{2, 3}, cmd.GenreIDs)
	assert.Nil(t, cmd.PublishedDate)
}

func TestCreateBookCommandCollectsAllFieldErrors(t *testing.T) {
	req := decodeCreate(t, `{
		"title": "",
		"price": "not a number",
		"published_date": "08.06.1949",
		"rating": null
	}`)

	_, err := req.Command()
	require.Error(t, err)
	appErr := apperrors.Get(err)
	require.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, []string{"this field is required"}, appErr.Fields["title"])
	assert.Equal(t, []string{"a valid decimal is required"}, appErr.Fields["price"])
	assert.Equal(t, []string{"date has wrong format; use YYYY-MM-DD"}, appErr.Fields["published_date"])
	assert.Equal(t, []string{"this field is required"}, appErr.Fields["rating"])
	assert.Contains(t, appErr.Fields, "pages")
}

func TestCreateBookCommandRanges(t *testing.T) {
	req := decodeCreate(t, `{
		"title": "Dune",
		"price": "-1",
		"pages": 0,
		"rating": "5.01",
		"stock": -2
	}`)

	_, err := req.Command()
	appErr := apperrors.Get(err)
	require.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields["price"], "must be greater than or equal to 0")
	assert.Contains(t, appErr.Fields["pages"], "must be a positive integer")
	assert.Contains(t, appErr.Fields["rating"], "must be between 0 and 5")
	assert.Contains(t, appErr.Fields["stock"], "must be greater than or equal to 0")
}

func TestUpdateBookCommandAbsentVsNull(t *testing.T) {
	// Absent fields leave everything untouched.
	cmd, err := decodeUpdate(t, `{}`).Command(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), cmd.ID)
	assert.Nil(t, cmd.Fields.Title)
	assert.Nil(t, cmd.Fields.PublisherID)
	assert.Nil(t, cmd.Fields.PublishedDate)
	assert.Nil(t, cmd.AuthorIDs)
	assert.Nil(t, cmd.GenreIDs)

	// null clears the nullable references.
	cmd, err = decodeUpdate(t, `{"publisher_id": null, "published_date": null}`).Command(7)
	require.NoError(t, err)
	require.NotNil(t, cmd.Fields.PublisherID)
	assert.Nil(t, *cmd.Fields.PublisherID)
	require.NotNil(t, cmd.Fields.PublishedDate)
	assert.Nil(t, *cmd.Fields.PublishedDate)

	// A value sets them.
	cmd, err = decodeUpdate(t, `{"publisher_id": 3, "published_date": "1965-08-01"}`).Command(7)
	require.NoError(t, err)
	require.NotNil(t, *cmd.Fields.PublisherID)
	assert.Equal(t, uint(3), **cmd.Fields.PublisherID)
	require.NotNil(t, *cmd.Fields.PublishedDate)
	assert.Equal(t, "1965-08-01", (*cmd.Fields.PublishedDate).Format("2006-01-02"))
}

func TestUpdateBookCommandAssociationLists(t *testing.T) {
	// An empty list is an explicit clear, distinct from absent.
	cmd, err := decodeUpdate(t, `{"authors": [], "genres": [4]}`).Command(1)
	require.NoError(t, err)
	require.NotNil(t, cmd.AuthorIDs)
	assert.Empty(t, *cmd.AuthorIDs)
	require.NotNil(t, cmd.GenreIDs)
	assert.Equal(t, []uint{4}, *cmd.GenreIDs)
}

func TestUpdateBookCommandValidation(t *testing.T) {
	_, err := decodeUpdate(t, `{"title": "", "price": "abc"}`).Command(1)
	appErr := apperrors.Get(err)
	require.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields["title"], "may not be blank")
	assert.Contains(t, appErr.Fields["price"], "a valid decimal is required")
}

func fixtureBook() *book.Book {
	pubID := uint(2)
	date := time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)
	return &book.Book{
		ID:            1,
		Title:         "Dune",
		PublisherID:   &pubID,
		Publisher:     &publisher.Publisher{ID: 2, Name: "Chilton Books"},
		Price:         decimal.RequireFromString("15.99"),
		Currency:      book.DefaultCurrency,
		Pages:         412,
		PublishedDate: &date,
		Rating:        decimal.RequireFromString("4.5"),
		Authors:       []author.Author{{ID: 3, Name: "Frank Herbert", BookCount: 1}},
		Genres:        []genre.Genre{{ID: 4, Name: "Science Fiction"}},
	}
}

func TestBookResponseProjection(t *testing.T) {
	b := fixtureBook()
	resp := NewBookResponse(b)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))

	// Fixed-point fields serialize as strings, not floats.
	assert.Equal(t, "15.99", m["price"])
	assert.Equal(t, "4.5", m["rating"])
	assert.Equal(t, "1965-08-01", m["published_date"])

	authors, ok := m["authors"].([]interface{})
	require.True(t, ok)
	require.Len(t, authors, 1)
	first := authors[0].(map[string]interface{})
	assert.Equal(t, "Frank Herbert", first["name"])
	assert.Equal(t, float64(1), first["book_count"])
}
