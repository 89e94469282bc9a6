package book

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUpdateApplyPartial(t *testing.T) {
	pubID := uint(3)
	date := time.Date(1949, 6, 8, 0, 0, 0, 0, time.UTC)
	b := Book{
		Title:         "Nineteen Eighty-Four",
		Description:   "original",
		PublisherID:   &pubID,
		Price:         decimal.RequireFromString("12.50"),
		PublishedDate: &date,
	}

	title := "1984"
	price := decimal.RequireFromString("9.99")
	Update{Title: &title, Price: &price}.Apply(&b)

	assert.Equal(t, "1984", b.Title)
	assert.True(t, b.Price.Equal(price))
	// Untouched fields keep their values.
	assert.Equal(t, "original", b.Description)
	assert.Equal(t, &pubID, b.PublisherID)
	assert.Equal(t, &date, b.PublishedDate)
}

func TestUpdateApplyClearsNullable(t *testing.T) {
	pubID := uint(3)
	date := time.Now()
	b := Book{PublisherID: &pubID, PublishedDate: &date, Description: "text"}

	var noPub *uint
	var noDate *time.Time
	empty := ""
	Update{PublisherID: &noPub, PublishedDate: &noDate, Description: &empty}.Apply(&b)

	assert.Nil(t, b.PublisherID)
	assert.Nil(t, b.PublishedDate)
	assert.Empty(t, b.Description)
}
