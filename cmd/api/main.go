// @title Quiz Editor API
// @version 1.0
// @description Edits stored quizzes: replaces a quiz's title and its full set of questions and answers.
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"quiz-editor/internal/adapter"
	"quiz-editor/internal/cache"
	"quiz-editor/internal/config"
	"quiz-editor/internal/database"
	"quiz-editor/internal/domain"
	"quiz-editor/internal/handler"
	"quiz-editor/internal/logger"
	"quiz-editor/internal/repository"
	"quiz-editor/internal/router"
	"quiz-editor/internal/service"
	"syscall"
	"time"

	_ "quiz-editor/cmd/api/docs"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Schema is created once, before any request is served.
	if err := database.RunMigrations(cfg.DB.Driver, cfg.DB.DSN); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		cacheAdapter = adapter.NewNoopCache()
		appLogger.Info("Redis address not configured, quiz detail cache disabled")
	}

	quizRepository := repository.NewQuizDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	detailCache := service.NewQuizDetailCacheService(
		cacheAdapter,
		cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.QuizDetail, config.DefaultQuizTTL),
	)
	quizService := service.NewQuizService(quizRepository, txManager, detailCache)
	quizHandler := handler.NewQuizHandler(quizService)

	app := router.NewApp(cfg.Server, quizHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := cfg.ListenAddr()
		appLogger.Info("Starting server", zap.String("addr", addr), zap.String("env", cfg.Logger.Env))
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
