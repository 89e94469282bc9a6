package handler

import (
	"github.com/gin-gonic/gin"

	apppublisher "github.com/bookshop-api/bookshop/internal/application/publisher"
	"github.com/bookshop-api/bookshop/internal/domain/publisher"
	"github.com/bookshop-api/bookshop/internal/interface/http/dto"
	"github.com/bookshop-api/bookshop/pkg/response"
)

// PublisherHandler serves the publisher endpoints.
type PublisherHandler struct {
	listPublishers  *apppublisher.ListPublishersUseCase
	getPublisher    *apppublisher.GetPublisherUseCase
	createPublisher *apppublisher.CreatePublisherUseCase
	updatePublisher *apppublisher.UpdatePublisherUseCase
	deletePublisher *apppublisher.DeletePublisherUseCase
}

// NewPublisherHandler creates the handler.
func NewPublisherHandler(
	listPublishers *apppublisher.ListPublishersUseCase,
	getPublisher *apppublisher.GetPublisherUseCase,
	createPublisher *apppublisher.CreatePublisherUseCase,
	updatePublisher *apppublisher.UpdatePublisherUseCase,
	deletePublisher *apppublisher.DeletePublisherUseCase,
) *PublisherHandler {
	return &PublisherHandler{
		listPublishers:  listPublishers,
		getPublisher:    getPublisher,
		createPublisher: createPublisher,
		updatePublisher: updatePublisher,
		deletePublisher: deletePublisher,
	}
}

// List serves GET /publishers/.
func (h *PublisherHandler) List(c *gin.Context) {
	publishers, err := h.listPublishers.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, dto.NewPublisherResponses(publishers))
}

// Get serves GET /publishers/{id}/, embedding the publisher's books.
func (h *PublisherHandler) Get(c *gin.Context) {
	id, ok := parseID(c, publisher.ErrNotFound)
	if !ok {
		return
	}
	p, books, err := h.getPublisher.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPublisherDetailResponse(p, books))
}

// Create serves POST /publishers/.
func (h *PublisherHandler) Create(c *gin.Context) {
	var req dto.CreatePublisherRequest
	if !bindJSON(c, &req) {
		return
	}
	entity, err := req.Entity()
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.createPublisher.Execute(c.Request.Context(), entity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewPublisherResponse(p))
}

// Update serves PUT /publishers/{id}/.
func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := parseID(c, publisher.ErrNotFound)
	if !ok {
		return
	}
	// Resolve the publisher first so an unknown ID answers 404 even when
	// the payload would not validate.
	if _, _, err := h.getPublisher.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdatePublisherRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.Command(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.updatePublisher.Execute(c.Request.Context(), cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPublisherResponse(p))
}

// Delete serves DELETE /publishers/{id}/. Refused with a conflict body
// while books still reference the publisher.
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, publisher.ErrNotFound)
	if !ok {
		return
	}
	if err := h.deletePublisher.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
