package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookshop-api/bookshop/internal/interface/http/handler"
	"github.com/bookshop-api/bookshop/internal/interface/http/middleware"
	"github.com/bookshop-api/bookshop/pkg/metrics"
)

// Policy is the access rule attached to a route.
type Policy int

const (
	// PolicyAnonymous routes are open to everyone.
	PolicyAnonymous Policy = iota

	// PolicyAuthenticated routes require a valid bearer token.
	PolicyAuthenticated
)

// Route binds one method+path to a handler under a policy. The full table
// lives in routes below, so the whole surface and who may call what reads
// in one place.
type Route struct {
	Method  string
	Path    string
	Policy  Policy
	Handler gin.HandlerFunc
}

// Handlers collects the endpoint handlers the router wires up.
type Handlers struct {
	Books      *handler.BookHandler
	Authors    *handler.AuthorHandler
	Publishers *handler.PublisherHandler
	Genres     *handler.GenreHandler
	Orders     *handler.OrderHandler
	Cart       *handler.CartHandler
	Users      *handler.UserHandler
}

func routes(h Handlers) []Route {
	return []Route{
		{http.MethodGet, "/books/", PolicyAnonymous, h.Books.List},
		{http.MethodPost, "/books/", PolicyAuthenticated, h.Books.Create},
		{http.MethodGet, "/books/:id/", PolicyAnonymous, h.Books.Get},
		{http.MethodPut, "/books/:id/", PolicyAuthenticated, h.Books.Update},
		{http.MethodDelete, "/books/:id/", PolicyAuthenticated, h.Books.Delete},

		{http.MethodGet, "/authors/", PolicyAnonymous, h.Authors.List},
		{http.MethodPost, "/authors/", PolicyAuthenticated, h.Authors.Create},
		{http.MethodGet, "/authors/:id/", PolicyAnonymous, h.Authors.Get},
		{http.MethodPut, "/authors/:id/", PolicyAuthenticated, h.Authors.Update},
		{http.MethodDelete, "/authors/:id/", PolicyAuthenticated, h.Authors.Delete},

		{http.MethodGet, "/publishers/", PolicyAnonymous, h.Publishers.List},
		{http.MethodPost, "/publishers/", PolicyAuthenticated, h.Publishers.Create},
		{http.MethodGet, "/publishers/:id/", PolicyAnonymous, h.Publishers.Get},
		{http.MethodPut, "/publishers/:id/", PolicyAuthenticated, h.Publishers.Update},
		{http.MethodDelete, "/publishers/:id/", PolicyAuthenticated, h.Publishers.Delete},

		{http.MethodGet, "/genres/", PolicyAnonymous, h.Genres.List},
		{http.MethodPost, "/genres/", PolicyAuthenticated, h.Genres.Create},

		{http.MethodPost, "/auth/register/", PolicyAnonymous, h.Users.Register},
		{http.MethodPost, "/auth/login/", PolicyAnonymous, h.Users.Login},
		{http.MethodPost, "/auth/logout/", PolicyAuthenticated, h.Users.Logout},

		{http.MethodPost, "/orders/", PolicyAuthenticated, h.Orders.Create},
		{http.MethodGet, "/orders/", PolicyAuthenticated, h.Orders.List},
		{http.MethodGet, "/orders/:id/", PolicyAuthenticated, h.Orders.Get},

		{http.MethodGet, "/cart/", PolicyAuthenticated, h.Cart.List},
		{http.MethodPost, "/cart/", PolicyAuthenticated, h.Cart.Add},
		{http.MethodDelete, "/cart/:id/", PolicyAuthenticated, h.Cart.Remove},
	}
}

// New assembles the gin engine: recovery, request logging, metrics, then
// the route table with each route's policy applied.
func New(h Handlers, auth *middleware.AuthMiddleware, registry *metrics.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics(registry))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Bookshop API"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(registry.Handler()))

	requireAuth := auth.RequireAuth()
	for _, route := range routes(h) {
		switch route.Policy {
		case PolicyAuthenticated:
			r.Handle(route.Method, route.Path, requireAuth, route.Handler)
		default:
			r.Handle(route.Method, route.Path, route.Handler)
		}
	}
	return r
}
