package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSort(t *testing.T) {
	for raw, want := range map[string]Sort{
		"":           SortNone,
		"price_asc":  SortPriceAsc,
		"price_desc": SortPriceDesc,
		"title_asc":  SortTitleAsc,
		"title_desc": SortTitleDesc,
	} {
		got, ok := ParseSort(raw)
		assert.True(t, ok, "raw %q", raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"price", "PRICE_ASC", "rating_desc", "title"} {
		_, ok := ParseSort(raw)
		assert.False(t, ok, "raw %q", raw)
	}
}
