package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reading-quiz/internal/adapter"
	"reading-quiz/internal/cache"
	"reading-quiz/internal/config"
	"reading-quiz/internal/database"
	"reading-quiz/internal/domain"
	"reading-quiz/internal/grading"
	"reading-quiz/internal/logger"
	"reading-quiz/internal/nlp"
	"reading-quiz/internal/qg"
	"reading-quiz/internal/repository"
	"reading-quiz/internal/samples"
	"reading-quiz/internal/service"

	"go.uber.org/zap"
)

func main() {
	count := flag.Int("count", 0, "questions per quiz (0 uses generation.default_count)")
	title := flag.String("title", "", "only generate a quiz for the sample with this title")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	l := logger.Get()
	l.Info("Batch process starting up...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	passages, err := samples.Load(cfg.SamplesPath)
	if err != nil {
		l.Fatal("Failed to load sample passages", zap.Error(err))
	}
	if *title != "" {
		p, ok := samples.Find(passages, *title)
		if !ok {
			l.Fatal("No sample passage with that title", zap.String("title", *title))
		}
		passages = []samples.Passage{p}
	}

	db, err := database.NewSQLXDB(ctx, cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	if _, err := database.RunMigrations(ctx, db, cfg.DB.Driver); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	quizRepo := repository.NewQuizDatabaseAdapter(db)

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			l.Warn("Redis unavailable, running without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		}
	}

	pipeline, err := nlp.NewProsePipeline()
	if err != nil {
		l.Fatal("Failed to initialize linguistic pipeline", zap.Error(err))
	}

	quizSvc := service.NewQuizService(
		quizRepo,
		qg.NewGenerator(pipeline, domain.DefaultRand()),
		grading.NewGrader(pipeline),
		service.NewQuizCacheService(cacheAdapter, cfg),
		cfg,
	)
	batchSvc := service.NewBatchService(quizSvc, cfg, l)

	result, err := batchSvc.GenerateFromSamples(ctx, passages, *count)
	if err != nil {
		l.Fatal("Batch process interrupted", zap.Error(err))
	}
	for _, id := range result.QuizIDs {
		fmt.Println(id)
	}
	if result.Failed > 0 {
		l.Error("Batch process finished with failures",
			zap.Int("generated", result.Generated),
			zap.Int("failed", result.Failed))
		os.Exit(1)
	}
	l.Info("Batch process completed successfully.", zap.Int("generated", result.Generated))
}
