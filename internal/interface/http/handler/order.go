package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/bookshop-api/bookshop/internal/application/order"
	"github.com/bookshop-api/bookshop/internal/domain/order"
	"github.com/bookshop-api/bookshop/internal/interface/http/dto"
	"github.com/bookshop-api/bookshop/internal/interface/http/middleware"
	"github.com/bookshop-api/bookshop/pkg/response"
)

// OrderHandler serves the order endpoints. All of them sit behind the auth
// middleware; the acting user always comes from the token.
type OrderHandler struct {
	createOrder *apporder.CreateOrderUseCase
	listOrders  *apporder.ListOrdersUseCase
	getOrder    *apporder.GetOrderUseCase
}

// NewOrderHandler creates the handler.
func NewOrderHandler(
	createOrder *apporder.CreateOrderUseCase,
	listOrders *apporder.ListOrdersUseCase,
	getOrder *apporder.GetOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrder: createOrder,
		listOrders:  listOrders,
		getOrder:    getOrder,
	}
}

// Create serves POST /orders/.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.createOrder.Execute(c.Request.Context(), req.Command(middleware.MustGetUserID(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewOrderResponse(o))
}

// List serves GET /orders/.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.listOrders.Execute(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, dto.NewOrderResponses(orders))
}

// Get serves GET /orders/{id}/.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, order.ErrNotFound)
	if !ok {
		return
	}
	o, err := h.getOrder.Execute(c.Request.Context(), id, middleware.MustGetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewOrderResponse(o))
}
