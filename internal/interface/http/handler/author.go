package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/bookshop-api/bookshop/internal/application/author"
	"github.com/bookshop-api/bookshop/internal/domain/author"
	"github.com/bookshop-api/bookshop/internal/interface/http/dto"
	"github.com/bookshop-api/bookshop/pkg/response"
)

// AuthorHandler serves the author endpoints.
type AuthorHandler struct {
	listAuthors  *appauthor.ListAuthorsUseCase
	getAuthor    *appauthor.GetAuthorUseCase
	createAuthor *appauthor.CreateAuthorUseCase
	updateAuthor *appauthor.UpdateAuthorUseCase
	deleteAuthor *appauthor.DeleteAuthorUseCase
}

// NewAuthorHandler creates the handler.
func NewAuthorHandler(
	listAuthors *appauthor.ListAuthorsUseCase,
	getAuthor *appauthor.GetAuthorUseCase,
	createAuthor *appauthor.CreateAuthorUseCase,
	updateAuthor *appauthor.UpdateAuthorUseCase,
	deleteAuthor *appauthor.DeleteAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		listAuthors:  listAuthors,
		getAuthor:    getAuthor,
		createAuthor: createAuthor,
		updateAuthor: updateAuthor,
		deleteAuthor: deleteAuthor,
	}
}

// List serves GET /authors/ with an optional q name filter.
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.listAuthors.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, dto.NewAuthorResponses(authors))
}

// Get serves GET /authors/{id}/, embedding the author's books.
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, author.ErrNotFound)
	if !ok {
		return
	}
	a, books, err := h.getAuthor.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAuthorDetailResponse(a, books))
}

// Create serves POST /authors/.
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if !bindJSON(c, &req) {
		return
	}
	entity, err := req.Entity()
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.createAuthor.Execute(c.Request.Context(), entity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewAuthorResponse(a))
}

// Update serves PUT /authors/{id}/.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, author.ErrNotFound)
	if !ok {
		return
	}
	// Resolve the author first so an unknown ID answers 404 even when the
	// payload would not validate.
	if _, _, err := h.getAuthor.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateAuthorRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.Command(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.updateAuthor.Execute(c.Request.Context(), cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAuthorResponse(a))
}

// Delete serves DELETE /authors/{id}/. Refused with a conflict body while
// the author still has books.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, author.ErrNotFound)
	if !ok {
		return
	}
	if err := h.deleteAuthor.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
