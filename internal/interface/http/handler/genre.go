package handler

import (
	"github.com/gin-gonic/gin"

	appgenre "github.com/bookshop-api/bookshop/internal/application/genre"
	"github.com/bookshop-api/bookshop/internal/interface/http/dto"
	"github.com/bookshop-api/bookshop/pkg/response"
)

// GenreHandler serves the genre endpoints.
type GenreHandler struct {
	listGenres  *appgenre.ListGenresUseCase
	createGenre *appgenre.CreateGenreUseCase
}

// NewGenreHandler creates the handler.
func NewGenreHandler(listGenres *appgenre.ListGenresUseCase, createGenre *appgenre.CreateGenreUseCase) *GenreHandler {
	return &GenreHandler{listGenres: listGenres, createGenre: createGenre}
}

// List serves GET /genres/.
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.listGenres.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, dto.NewGenreResponses(genres))
}

// Create serves POST /genres/.
func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.CreateGenreRequest
	if !bindJSON(c, &req) {
		return
	}
	entity, err := req.Entity()
	if err != nil {
		response.Error(c, err)
		return
	}

	g, err := h.createGenre.Execute(c.Request.Context(), entity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.GenreResponse{ID: g.ID, Name: g.Name})
}
