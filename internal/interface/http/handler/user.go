package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/bookshop-api/bookshop/internal/application/user"
	"github.com/bookshop-api/bookshop/internal/interface/http/dto"
	"github.com/bookshop-api/bookshop/internal/interface/http/middleware"
	"github.com/bookshop-api/bookshop/pkg/response"
)

// UserHandler serves registration, login and logout.
type UserHandler struct {
	register *appuser.RegisterUseCase
	login    *appuser.LoginUseCase
	logout   *appuser.LogoutUseCase
}

// NewUserHandler creates the handler.
func NewUserHandler(
	register *appuser.RegisterUseCase,
	login *appuser.LoginUseCase,
	logout *appuser.LogoutUseCase,
) *UserHandler {
	return &UserHandler{register: register, login: login, logout: logout}
}

// Register serves POST /auth/register/.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.register.Execute(c.Request.Context(), appuser.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Login serves POST /auth/login/.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.login.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Logout serves POST /auth/logout/. The token being blacklisted is the one
// this request authenticated with.
func (h *UserHandler) Logout(c *gin.Context) {
	err := h.logout.Execute(c.Request.Context(), middleware.MustGetUserID(c), middleware.GetToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
