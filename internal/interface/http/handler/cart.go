package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/bookshop-api/bookshop/internal/application/cart"
	"github.com/bookshop-api/bookshop/internal/domain/cart"
	"github.com/bookshop-api/bookshop/internal/interface/http/dto"
	"github.com/bookshop-api/bookshop/internal/interface/http/middleware"
	"github.com/bookshop-api/bookshop/pkg/response"
)

// CartHandler serves the cart endpoints.
type CartHandler struct {
	addToCart      *appcart.AddToCartUseCase
	listCart       *appcart.ListCartUseCase
	removeFromCart *appcart.RemoveFromCartUseCase
}

// NewCartHandler creates the handler.
func NewCartHandler(
	addToCart *appcart.AddToCartUseCase,
	listCart *appcart.ListCartUseCase,
	removeFromCart *appcart.RemoveFromCartUseCase,
) *CartHandler {
	return &CartHandler{
		addToCart:      addToCart,
		listCart:       listCart,
		removeFromCart: removeFromCart,
	}
}

// List serves GET /cart/.
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.listCart.Execute(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, dto.NewCartItemResponses(items))
}

// Add serves POST /cart/.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.addToCart.Execute(c.Request.Context(), middleware.MustGetUserID(c), req.BookID, req.QuantityOrDefault())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewCartItemResponse(item))
}

// Remove serves DELETE /cart/{id}/.
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := parseID(c, cart.ErrNotFound)
	if !ok {
		return
	}
	if err := h.removeFromCart.Execute(c.Request.Context(), middleware.MustGetUserID(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
