package router

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcomeAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the Bookshop API", decodeBody(t, rec)["message"])

	rec = s.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMutationsRequireAuth(t *testing.T) {
	s := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/books/"},
		{http.MethodPut, "/books/1/"},
		{http.MethodDelete, "/books/1/"},
		{http.MethodPost, "/authors/"},
		{http.MethodPost, "/genres/"},
		{http.MethodGet, "/orders/"},
		{http.MethodGet, "/cart/"},
	} {
		rec := s.do(t, route.method, route.path, "", `{}`)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", route.method, route.path)
		assert.Contains(t, decodeBody(t, rec), "detail")
	}

	// Reads stay open.
	rec := s.do(t, http.MethodGet, "/books/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

// seedShelf creates two authors sharing a surname, two publishers, two
// genres and four books through the public API.
type shelf struct {
	orwell, sonia, huxley       uint
	secker, chatto              uint
	dystopia, scifi             uint
	nineteen, farm, brave, coll uint
}

func seedShelf(t *testing.T, s *testServer) shelf {
	t.Helper()
	var sh shelf
	sh.orwell = s.createID(t, "/authors/", `{"name": "George Orwell"}`)
	sh.sonia = s.createID(t, "/authors/", `{"name": "Sonia Orwell"}`)
	sh.huxley = s.createID(t, "/authors/", `{"name": "Aldous Huxley"}`)
	sh.secker = s.createID(t, "/publishers/", `{"name": "Secker & Warburg"}`)
	sh.chatto = s.createID(t, "/publishers/", `{"name": "Chatto & Windus"}`)
	sh.dystopia = s.createID(t, "/genres/", `{"name": "Dystopia"}`)
	sh.scifi = s.createID(t, "/genres/", `{"name": "Science Fiction"}`)

	sh.nineteen = s.createID(t, "/books/", fmt.Sprintf(
		`{"title": "Nineteen Eighty-Four", "price": "12.50", "pages": 328, "rating": "4.7",
		  "publisher_id": %d, "authors": [%d], "genres": [%d]}`,
		sh.secker, sh.orwell, sh.dystopia))
	sh.farm = s.createID(t, "/books/", fmt.Sprintf(
		`{"title": "Animal Farm", "price": "8.00", "pages": 112, "rating": "4.4",
		  "publisher_id": %d, "authors": [%d], "genres": [%d]}`,
		sh.secker, sh.orwell, sh.dystopia))
	sh.brave = s.createID(t, "/books/", fmt.Sprintf(
		`{"title": "Brave New World", "price": "10.00", "pages": 311, "rating": "4.2",
		  "publisher_id": %d, "authors": [%d], "genres": [%d, %d]}`,
		sh.chatto, sh.huxley, sh.dystopia, sh.scifi))
	sh.coll = s.createID(t, "/books/", fmt.Sprintf(
		`{"title": "Collected Essays", "price": "20.00", "pages": 600, "rating": "4.0",
		  "authors": [%d, %d]}`,
		sh.orwell, sh.sonia))
	return sh
}

func listedTitles(t *testing.T, s *testServer, path string) []string {
	t.Helper()
	rec := s.do(t, http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var titles []string
	for _, item := range dataList(t, rec) {
		titles = append(titles, item.(map[string]interface{})["title"].(string))
	}
	return titles
}

func TestBookListFilters(t *testing.T) {
	s := newTestServer(t)
	sh := seedShelf(t, s)

	// Free text hits titles and author names, once per book even when two
	// of its authors match.
	assert.ElementsMatch(t,
		[]string{"Nineteen Eighty-Four", "Animal Farm", "Collected Essays"},
		listedTitles(t, s, "/books/?q=orwell"))
	assert.ElementsMatch(t,
		[]string{"Brave New World"},
		listedTitles(t, s, "/books/?q=BRAVE"))

	assert.ElementsMatch(t,
		[]string{"Nineteen Eighty-Four", "Animal Farm"},
		listedTitles(t, s, fmt.Sprintf("/books/?publisherId=%d", sh.secker)))

	// Genre matches exactly, ignoring case; a prefix is no match.
	assert.ElementsMatch(t,
		[]string{"Brave New World"},
		listedTitles(t, s, "/books/?genre=science+fiction"))
	assert.Empty(t, listedTitles(t, s, "/books/?genre=science"))

	// Filters compose.
	assert.ElementsMatch(t,
		[]string{"Animal Farm"},
		listedTitles(t, s, fmt.Sprintf("/books/?q=farm&publisherId=%d", sh.secker)))

	assert.Equal(t,
		[]string{"Animal Farm", "Brave New World", "Nineteen Eighty-Four", "Collected Essays"},
		listedTitles(t, s, "/books/?sort=price_asc"))
	assert.Equal(t,
		[]string{"Nineteen Eighty-Four", "Collected Essays", "Brave New World", "Animal Farm"},
		listedTitles(t, s, "/books/?sort=title_desc"))
}

func TestBookListRejectsBadParams(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/books/?sort=price", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "sort")

	rec = s.do(t, http.MethodGet, "/books/?publisherId=abc", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "publisherId")
}

func TestCreateBookValidationLeavesNoOrphan(t *testing.T) {
	s := newTestServer(t)

	rec := s.authed(t, http.MethodPost, "/books/", `{"price": "oops"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "title")
	assert.Contains(t, body, "price")
	assert.Contains(t, body, "pages")
	assert.Contains(t, body, "rating")

	// A create referencing missing authors is rejected whole.
	rec = s.authed(t, http.MethodPost, "/books/",
		`{"title": "Ghost", "price": "5.00", "pages": 100, "rating": "3.0", "authors": [999]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "authors")

	assert.Empty(t, listedTitles(t, s, "/books/"))
}

func TestCreateBookDedupesRepeatedLinks(t *testing.T) {
	s := newTestServer(t)

	orwell := s.createID(t, "/authors/", `{"name": "George Orwell"}`)
	dystopia := s.createID(t, "/genres/", `{"name": "Dystopia"}`)

	// A repeated ID in the payload attaches the link once.
	rec := s.authed(t, http.MethodPost, "/books/", fmt.Sprintf(
		`{"title": "Animal Farm", "price": "8.00", "pages": 112, "rating": "4.4",
		  "authors": [%d, %d], "genres": [%d, %d]}`,
		orwell, orwell, dystopia, dystopia))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)

	authors := body["authors"].([]interface{})
	require.Len(t, authors, 1)
	assert.Equal(t, float64(1), authors[0].(map[string]interface{})["book_count"])
	assert.Len(t, body["genres"], 1)
}

func TestBookListItemsUseSlimShape(t *testing.T) {
	s := newTestServer(t)
	sh := seedShelf(t, s)

	rec := s.do(t, http.MethodGet, "/books/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	item := dataList(t, rec)[0].(map[string]interface{})
	for _, key := range []string{"id", "title", "authors", "publisher", "price", "currency", "stock", "rating", "genres", "cover_url"} {
		assert.Contains(t, item, key)
	}
	for _, key := range []string{"description", "isbn", "pages", "published_date", "created_at"} {
		assert.NotContains(t, item, key)
	}

	// Books embedded in author detail use the same shape.
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/authors/%d/", sh.orwell), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	embedded := decodeBody(t, rec)["books"].([]interface{})[0].(map[string]interface{})
	assert.NotContains(t, embedded, "pages")

	// The detail endpoint keeps the full shape.
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/books/%d/", sh.farm), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "pages")
}

func TestUpdateBookReplacesAssociations(t *testing.T) {
	s := newTestServer(t)
	sh := seedShelf(t, s)

	// Swap the author set and clear the genres.
	rec := s.authed(t, http.MethodPut, fmt.Sprintf("/books/%d/", sh.brave),
		fmt.Sprintf(`{"authors": [%d], "genres": []}`, sh.orwell))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)

	authors := body["authors"].([]interface{})
	require.Len(t, authors, 1)
	assert.Equal(t, "George Orwell", authors[0].(map[string]interface{})["name"])
	assert.Empty(t, body["genres"])

	// Scalars not mentioned stay put.
	assert.Equal(t, "Brave New World", body["title"])
	assert.Equal(t, "10", body["price"].(string)[:2])

	// Partial scalar update touches nothing else.
	rec = s.authed(t, http.MethodPut, fmt.Sprintf("/books/%d/", sh.brave),
		`{"price": "11.00"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "11", body["price"].(string)[:2])
	assert.Len(t, body["authors"], 1)

	// Clearing the publisher reference with an explicit null.
	rec = s.authed(t, http.MethodPut, fmt.Sprintf("/books/%d/", sh.brave),
		`{"publisher_id": null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody(t, rec)["publisher"])
}

func TestAuthorDeleteBlockedWhileBooksExist(t *testing.T) {
	s := newTestServer(t)
	sh := seedShelf(t, s)

	rec := s.authed(t, http.MethodDelete, fmt.Sprintf("/authors/%d/", sh.huxley), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "cannot delete author")

	// Still there, still linked.
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/authors/%d/", sh.huxley), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["book_count"])
	assert.Len(t, body["books"], 1)

	// Detach the book, then deletion goes through.
	rec = s.authed(t, http.MethodPut, fmt.Sprintf("/books/%d/", sh.brave),
		fmt.Sprintf(`{"authors": [%d]}`, sh.orwell))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.authed(t, http.MethodDelete, fmt.Sprintf("/authors/%d/", sh.huxley), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPublisherDeleteBlockedWhileBooksExist(t *testing.T) {
	s := newTestServer(t)
	sh := seedShelf(t, s)

	rec := s.authed(t, http.MethodDelete, fmt.Sprintf("/publishers/%d/", sh.chatto), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "cannot delete publisher")

	rec = s.authed(t, http.MethodPut, fmt.Sprintf("/books/%d/", sh.brave), `{"publisher_id": null}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.authed(t, http.MethodDelete, fmt.Sprintf("/publishers/%d/", sh.chatto), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNotFoundBodies(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/books/999/", "/authors/999/", "/publishers/999/", "/books/abc/"} {
		rec := s.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, decodeBody(t, rec), "detail", path)
	}
}

func TestUpdateUnknownIDWinsOverBadPayload(t *testing.T) {
	s := newTestServer(t)

	// The record is resolved before the body is validated, so an unknown
	// ID answers 404 even with an unusable payload.
	for _, path := range []string{"/books/999/", "/authors/999/", "/publishers/999/"} {
		rec := s.authed(t, http.MethodPut, path, `{"name": "", "price": "oops"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, decodeBody(t, rec), "detail", path)
	}
}

func TestGenreDuplicateName(t *testing.T) {
	s := newTestServer(t)

	s.createID(t, "/genres/", `{"name": "Horror"}`)
	rec := s.authed(t, http.MethodPost, "/genres/", `{"name": "Horror"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "error")
}

func TestOrderLifecycle(t *testing.T) {
	s := newTestServer(t)
	sh := seedShelf(t, s)

	rec := s.authed(t, http.MethodPost, "/orders/",
		fmt.Sprintf(`{"items": [{"book_id": %d, "quantity": 2}, {"book_id": %d, "quantity": 1}]}`,
			sh.farm, sh.brave))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "created", body["status"])
	assert.Equal(t, "26", body["total_amount"].(string)[:2]) // 2*8.00 + 10.00
	orderID := uint(body["id"].(float64))

	// The snapshot survives a later price change.
	rec = s.authed(t, http.MethodPut, fmt.Sprintf("/books/%d/", sh.farm), `{"price": "99.00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.authed(t, http.MethodGet, fmt.Sprintf("/orders/%d/", orderID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody(t, rec)["items"].([]interface{})
	require.Len(t, items, 2)
	prices := map[float64]string{}
	for _, it := range items {
		m := it.(map[string]interface{})
		prices[m["book_id"].(float64)] = m["unit_price"].(string)
	}
	assert.Equal(t, "8", prices[float64(sh.farm)][:1])

	// A book with order history cannot be deleted.
	rec = s.authed(t, http.MethodDelete, fmt.Sprintf("/books/%d/", sh.farm), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "existing orders")

	// Empty orders are rejected.
	rec = s.authed(t, http.MethodPost, "/orders/", `{"items": []}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "items")

	rec = s.authed(t, http.MethodGet, "/orders/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)
}

func TestCartLifecycle(t *testing.T) {
	s := newTestServer(t)
	sh := seedShelf(t, s)

	rec := s.authed(t, http.MethodPost, "/cart/",
		fmt.Sprintf(`{"book_id": %d, "quantity": 2}`, sh.nineteen))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	itemID := uint(decodeBody(t, rec)["id"].(float64))

	// Quantity defaults to one.
	rec = s.authed(t, http.MethodPost, "/cart/", fmt.Sprintf(`{"book_id": %d}`, sh.farm))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["quantity"])

	rec = s.authed(t, http.MethodPost, "/cart/", `{"book_id": 9999}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "book_id")

	rec = s.authed(t, http.MethodGet, "/cart/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 2)

	rec = s.authed(t, http.MethodDelete, fmt.Sprintf("/cart/%d/", itemID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.authed(t, http.MethodGet, "/cart/", "")
	assert.Len(t, dataList(t, rec), 1)
}

// TestDuneEndToEnd walks the catalog flow in one piece: create the
// supporting records, publish the book, read it back anonymously, reprice
// it, and check the projection at every step.
func TestDuneEndToEnd(t *testing.T) {
	s := newTestServer(t)

	herbert := s.createID(t, "/authors/", `{"name": "Frank Herbert"}`)
	chilton := s.createID(t, "/publishers/", `{"name": "Chilton Books"}`)
	scifi := s.createID(t, "/genres/", `{"name": "Science Fiction"}`)

	dune := s.createID(t, "/books/", fmt.Sprintf(
		`{"title": "Dune", "price": "15.99", "pages": 412, "rating": "4.5",
		  "published_date": "1965-08-01",
		  "publisher_id": %d, "authors": [%d], "genres": [%d]}`,
		chilton, herbert, scifi))

	rec := s.do(t, http.MethodGet, fmt.Sprintf("/books/%d/", dune), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Dune", body["title"])
	assert.Equal(t, "15.99", body["price"])
	assert.Equal(t, "1965-08-01", body["published_date"])
	assert.Equal(t, "Chilton Books", body["publisher"].(map[string]interface{})["name"])
	authors := body["authors"].([]interface{})
	require.Len(t, authors, 1)
	assert.Equal(t, "Frank Herbert", authors[0].(map[string]interface{})["name"])
	assert.Equal(t, float64(1), authors[0].(map[string]interface{})["book_count"])

	assert.ElementsMatch(t, []string{"Dune"}, listedTitles(t, s, "/books/?q=herbert"))

	rec = s.authed(t, http.MethodPut, fmt.Sprintf("/books/%d/", dune), `{"price": "12.99"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12.99", decodeBody(t, rec)["price"])

	rec = s.authed(t, http.MethodDelete, fmt.Sprintf("/books/%d/", dune), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, listedTitles(t, s, "/books/"))
}
