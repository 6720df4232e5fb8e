package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"artisticdb/docs"
	"artisticdb/internal/auth"
	"artisticdb/internal/cache"
	"artisticdb/internal/config"
	"artisticdb/internal/db"
	"artisticdb/internal/handler"
	"artisticdb/internal/logger"
	"artisticdb/internal/payment"
	"artisticdb/internal/repository"
	"artisticdb/internal/router"
	"artisticdb/internal/service"
)

// @title ArtisticDB Class Enrollment API
// @version 1.0
// @description Art class marketplace: instructors list classes, admins moderate them, students pay and enroll.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	envErr := config.LoadEnvFile()
	cfg := config.Load()

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Warn("ignoring unreadable .env file", zap.Error(envErr))
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	client, err := db.NewMongo(connectCtx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	database := client.Database(cfg.DatabaseName)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = db.EnsureIndexes(indexCtx, database)
	cancel()
	if err != nil {
		log.Fatal("ensure indexes", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn("role cache unreachable, serving from database", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	if cfg.PaymentSecretKey == "" {
		log.Warn("PAYMENT_SK_TEST is not set, payment intents will fail")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	classRepo := repository.NewClassRepository(database)
	cartRepo := repository.NewCartRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient, cfg.RoleCacheTTL, log)
	classService := service.NewClassService(classRepo, log)
	cartService := service.NewCartService(classRepo, cartRepo)
	paymentService := service.NewPaymentService(
		payment.NewStripeProvider(cfg.PaymentSecretKey),
		cfg.PaymentCurrency,
		paymentRepo,
		cartRepo,
		log,
	)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(
		e,
		cfg,
		log,
		jwtService,
		userService,
		handler.NewAuthHandler(jwtService),
		handler.NewClassHandler(classService),
		handler.NewCartHandler(cartService),
		handler.NewUserHandler(userService),
		handler.NewPaymentHandler(paymentService),
	)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server listening", zap.String("addr", addr), zap.String("swagger", "/swagger/index.html"))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if err := cacheClient.Close(); err != nil {
		log.Error("cache close", zap.Error(err))
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Error("database disconnect", zap.Error(err))
	}
}
