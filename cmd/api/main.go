// @title Reading Quiz API
// @version 1.0
// @description Generates reading-comprehension quizzes from passages and grades submitted answers.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "reading-quiz/cmd/api/docs"
	"reading-quiz/internal/adapter"
	"reading-quiz/internal/cache"
	"reading-quiz/internal/config"
	"reading-quiz/internal/database"
	"reading-quiz/internal/domain"
	"reading-quiz/internal/grading"
	"reading-quiz/internal/handler"
	"reading-quiz/internal/logger"
	"reading-quiz/internal/middleware"
	"reading-quiz/internal/nlp"
	"reading-quiz/internal/qg"
	"reading-quiz/internal/repository"
	"reading-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Connect to database
	db, err := database.NewSQLXDB(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	if applied, err := database.RunMigrations(ctx, db, cfg.DB.Driver); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	} else if applied > 0 {
		appLogger.Info("Applied migrations", zap.Int("count", applied))
	}
	quizRepository := repository.NewQuizDatabaseAdapter(db)

	// Redis is optional; quizzes are always served from the database when
	// the cache is missing.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
		}
	} else {
		appLogger.Warn("Redis cache is not configured. Running without cache.")
	}

	pipeline, err := nlp.NewProsePipeline()
	if err != nil {
		appLogger.Fatal("Failed to initialize linguistic pipeline", zap.Error(err))
	}
	appLogger.Info("Linguistic pipeline initialized")

	// Initialize services
	quizService := service.NewQuizService(
		quizRepository,
		qg.NewGenerator(pipeline, domain.DefaultRand()),
		grading.NewGrader(pipeline),
		service.NewQuizCacheService(cacheAdapter, cfg),
		cfg,
	)
	sampleService := service.NewSampleService(cfg.SamplesPath)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	sampleHandler := handler.NewSampleHandler(sampleService)
	healthHandler := handler.NewHealthHandler(db.PingContext, cacheAdapter)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, quizHandler, sampleHandler, healthHandler)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
