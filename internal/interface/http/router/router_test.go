package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appauthor "github.com/bookshop-api/bookshop/internal/application/author"
	appbook "github.com/bookshop-api/bookshop/internal/application/book"
	appcart "github.com/bookshop-api/bookshop/internal/application/cart"
	appgenre "github.com/bookshop-api/bookshop/internal/application/genre"
	apporder "github.com/bookshop-api/bookshop/internal/application/order"
	apppublisher "github.com/bookshop-api/bookshop/internal/application/publisher"
	appuser "github.com/bookshop-api/bookshop/internal/application/user"
	"github.com/bookshop-api/bookshop/internal/domain/user"
	"github.com/bookshop-api/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/bookshop-api/bookshop/internal/infrastructure/persistence/redis"
	"github.com/bookshop-api/bookshop/internal/interface/http/handler"
	"github.com/bookshop-api/bookshop/internal/interface/http/middleware"
	"github.com/bookshop-api/bookshop/pkg/jwt"
	"github.com/bookshop-api/bookshop/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine *gin.Engine
	token  string
}

// newTestServer wires the whole stack over an in-memory database and
// registers one logged-in user whose token the tests act with.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, mysql.AutoMigrate(db))

	txManager := mysql.NewTxManager(db)
	bookRepo := mysql.NewBookRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	publisherRepo := mysql.NewPublisherRepository(db)
	genreRepo := mysql.NewGenreRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	userRepo := mysql.NewUserRepository(db)

	// The session store points at nothing; login treats a failed session
	// write as non-fatal, which keeps the suite free of a Redis server.
	sessionStore := redis.NewSessionStore(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"}))
	jwtManager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	userService := user.NewService(userRepo)

	h := Handlers{
		Books: handler.NewBookHandler(
			appbook.NewListBooksUseCase(bookRepo),
			appbook.NewGetBookUseCase(bookRepo),
			appbook.NewCreateBookUseCase(bookRepo, authorRepo, genreRepo, publisherRepo, txManager),
			appbook.NewUpdateBookUseCase(bookRepo, authorRepo, genreRepo, publisherRepo, txManager),
			appbook.NewDeleteBookUseCase(bookRepo, orderRepo, txManager),
		),
		Authors: handler.NewAuthorHandler(
			appauthor.NewListAuthorsUseCase(authorRepo),
			appauthor.NewGetAuthorUseCase(authorRepo, bookRepo),
			appauthor.NewCreateAuthorUseCase(authorRepo),
			appauthor.NewUpdateAuthorUseCase(authorRepo),
			appauthor.NewDeleteAuthorUseCase(authorRepo),
		),
		Publishers: handler.NewPublisherHandler(
			apppublisher.NewListPublishersUseCase(publisherRepo),
			apppublisher.NewGetPublisherUseCase(publisherRepo, bookRepo),
			apppublisher.NewCreatePublisherUseCase(publisherRepo),
			apppublisher.NewUpdatePublisherUseCase(publisherRepo),
			apppublisher.NewDeletePublisherUseCase(publisherRepo),
		),
		Genres: handler.NewGenreHandler(
			appgenre.NewListGenresUseCase(genreRepo),
			appgenre.NewCreateGenreUseCase(genreRepo),
		),
		Orders: handler.NewOrderHandler(
			apporder.NewCreateOrderUseCase(orderRepo, bookRepo, txManager),
			apporder.NewListOrdersUseCase(orderRepo),
			apporder.NewGetOrderUseCase(orderRepo),
		),
		Cart: handler.NewCartHandler(
			appcart.NewAddToCartUseCase(cartRepo, bookRepo),
			appcart.NewListCartUseCase(cartRepo),
			appcart.NewRemoveFromCartUseCase(cartRepo),
		),
		Users: handler.NewUserHandler(
			appuser.NewRegisterUseCase(userService),
			appuser.NewLoginUseCase(userService, jwtManager, sessionStore, 24*time.Hour),
			appuser.NewLogoutUseCase(jwtManager, sessionStore),
		),
	}

	engine := New(h, middleware.NewAuthMiddleware(jwtManager, neverBlacklisted{}), metrics.NewRegistry())
	srv := &testServer{engine: engine}

	resp := srv.do(t, http.MethodPost, "/auth/register/", "",
		`{"name": "Test Reader", "email": "reader@example.com", "password": "correct horse"}`)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = srv.do(t, http.MethodPost, "/auth/login/", "",
		`{"email": "reader@example.com", "password": "correct horse"}`)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	require.NotEmpty(t, login.AccessToken)
	srv.token = login.AccessToken
	return srv
}

type neverBlacklisted struct{}

func (neverBlacklisted) IsBlacklisted(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) authed(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	return s.do(t, method, path, s.token, body)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m), rec.Body.String())
	return m
}

func dataList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	body := decodeBody(t, rec)
	list, ok := body["data"].([]interface{})
	require.True(t, ok, "missing data envelope: %s", rec.Body.String())
	return list
}

// createID posts the body and returns the new resource's id.
func (s *testServer) createID(t *testing.T, path, body string) uint {
	t.Helper()
	rec := s.authed(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, ok := decodeBody(t, rec)["id"].(float64)
	require.True(t, ok)
	return uint(id)
}
