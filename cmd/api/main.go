package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	appauthor "github.com/bookshop-api/bookshop/internal/application/author"
	appbook "github.com/bookshop-api/bookshop/internal/application/book"
	appcart "github.com/bookshop-api/bookshop/internal/application/cart"
	appgenre "github.com/bookshop-api/bookshop/internal/application/genre"
	apporder "github.com/bookshop-api/bookshop/internal/application/order"
	apppublisher "github.com/bookshop-api/bookshop/internal/application/publisher"
	appuser "github.com/bookshop-api/bookshop/internal/application/user"
	"github.com/bookshop-api/bookshop/internal/domain/user"
	"github.com/bookshop-api/bookshop/internal/infrastructure/config"
	"github.com/bookshop-api/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/bookshop-api/bookshop/internal/infrastructure/persistence/redis"
	"github.com/bookshop-api/bookshop/internal/interface/http/handler"
	"github.com/bookshop-api/bookshop/internal/interface/http/middleware"
	"github.com/bookshop-api/bookshop/internal/interface/http/router"
	"github.com/bookshop-api/bookshop/pkg/jwt"
	"github.com/bookshop-api/bookshop/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	// Infrastructure
	txManager := mysql.NewTxManager(db)
	bookRepo := mysql.NewBookRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	publisherRepo := mysql.NewPublisherRepository(db)
	genreRepo := mysql.NewGenreRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	userRepo := mysql.NewUserRepository(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.RefreshTokenExpire)
	registry := metrics.NewRegistry()

	// Domain
	userService := user.NewService(userRepo)

	// Application
	handlers := router.Handlers{
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
			appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire),
			appuser.NewLogoutUseCase(jwtManager, sessionStore),
		),
	}
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(handlers, authMiddleware, registry)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}
