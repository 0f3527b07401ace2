package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bistroboss/internal/auth"
	"bistroboss/internal/cache"
	"bistroboss/internal/config"
	"bistroboss/internal/db"
	"bistroboss/internal/gateway"
	"bistroboss/internal/handler"
	"bistroboss/internal/model"
	"bistroboss/internal/repository"
	"bistroboss/internal/router"
	"bistroboss/internal/service"
)

// @title Bistro Boss API
// @version 1.0
// @description Restaurant ordering API with menu catalog, carts, reviews, payments and JWT authentication.
// @host localhost:5000
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.Review{},
		&model.CartItem{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	tokens := auth.NewTokenService(cfg.AccessTokenSecret)
	stripeGateway := gateway.NewStripeGateway(cfg.StripeSecretKey)

	userService := service.NewUserService(userRepo)
	menuService := service.NewMenuService(menuRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo)
	cartService := service.NewCartService(cartRepo, menuRepo)
	paymentService := service.NewPaymentService(paymentRepo, cacheClient)
	statsService := service.NewStatsService(userRepo, menuRepo, paymentRepo, cacheClient)

	authHandler := handler.NewAuthHandler(tokens)
	userHandler := handler.NewUserHandler(userService)
	menuHandler := handler.NewMenuHandler(menuService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	cartHandler := handler.NewCartHandler(cartService)
	paymentHandler := handler.NewPaymentHandler(paymentService, statsService, stripeGateway)

	router.Register(
		e,
		cfg,
		tokens,
		userService,
		authHandler,
		userHandler,
		menuHandler,
		reviewHandler,
		cartHandler,
		paymentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
