package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/bookshop-api/bookshop/internal/application/book"
	"github.com/bookshop-api/bookshop/internal/domain/book"
	"github.com/bookshop-api/bookshop/internal/interface/http/dto"
	apperrors "github.com/bookshop-api/bookshop/pkg/errors"
	"github.com/bookshop-api/bookshop/pkg/response"
)

// BookHandler serves the catalog endpoints.
type BookHandler struct {
	listBooks  *appbook.ListBooksUseCase
	getBook    *appbook.GetBookUseCase
	createBook *appbook.CreateBookUseCase
	updateBook *appbook.UpdateBookUseCase
	deleteBook *appbook.DeleteBookUseCase
}

// NewBookHandler creates the handler.
func NewBookHandler(
	listBooks *appbook.ListBooksUseCase,
	getBook *appbook.GetBookUseCase,
	createBook *appbook.CreateBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooks:  listBooks,
		getBook:    getBook,
		createBook: createBook,
		updateBook: updateBook,
		deleteBook: deleteBook,
	}
}

// List serves GET /books/ with the q, publisherId, genre and sort query
// parameters.
func (h *BookHandler) List(c *gin.Context) {
	filter, err := buildBookFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	books, err := h.listBooks.Execute(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, dto.NewBookListResponses(books))
}

// Get serves GET /books/{id}/.
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c, book.ErrNotFound)
	if !ok {
		return
	}
	b, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewBookResponse(b))
}

// Create serves POST /books/.
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.Command()
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.createBook.Execute(c.Request.Context(), cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewBookResponse(b))
}

// Update serves PUT /books/{id}/.
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c, book.ErrNotFound)
	if !ok {
		return
	}
	// Resolve the book first so an unknown ID answers 404 even when the
	// payload would not validate.
	if _, err := h.getBook.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.Command(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.updateBook.Execute(c.Request.Context(), cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewBookResponse(b))
}

// Delete serves DELETE /books/{id}/.
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, book.ErrNotFound)
	if !ok {
		return
	}
	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// buildBookFilter turns the list query parameters into a filter, reporting
// every bad parameter at once.
func buildBookFilter(c *gin.Context) (book.Filter, error) {
	fields := map[string][]string{}
	filter := book.Filter{
		Query: c.Query("q"),
		Genre: c.Query("genre"),
	}

	if raw := c.Query("publisherId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fields["publisherId"] = append(fields["publisherId"], "a valid integer is required")
		} else {
			pid := uint(id)
			filter.PublisherID = &pid
		}
	}

	if raw := c.Query("sort"); raw != "" {
		sort, ok := book.ParseSort(raw)
		if !ok {
			fields["sort"] = append(fields["sort"], "must be one of price_asc, price_desc, title_asc, title_desc")
		} else {
			filter.Sort = sort
		}
	}

	if len(fields) > 0 {
		return book.Filter{}, apperrors.Validation(fields)
	}
	return filter, nil
}
