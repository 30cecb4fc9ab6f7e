package service

import (
	"context"
	"sync"
	"time"

	"reading-quiz/internal/config"
	"reading-quiz/internal/samples"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult summarises one batch generation run.
type BatchResult struct {
	Generated int
	Failed    int
	QuizIDs   []string
}

// BatchService generates and stores quizzes for many passages at once.
type BatchService interface {
	GenerateFromSamples(ctx context.Context, passages []samples.Passage, count int) (*BatchResult, error)
}

// batchService implements BatchService.
type batchService struct {
	quizService QuizService
	cfg         *config.Config
	logger      *zap.Logger
}

// NewBatchService creates a new instance of batchService.
func NewBatchService(quizService QuizService, cfg *config.Config, logger *zap.Logger) BatchService {
	return &batchService{
		quizService: quizService,
		cfg:         cfg,
		logger:      logger,
	}
}

// GenerateFromSamples creates one quiz per passage, running at most
// generation.batch_concurrency generations at a time. A failing passage is
// logged and counted without stopping the others. The returned error is only
// set when ctx is cancelled.
func (s *batchService) GenerateFromSamples(ctx context.Context, passages []samples.Passage, count int) (*BatchResult, error) {
	start := time.Now()
	s.logger.Info("Starting batch quiz generation", zap.Int("passages", len(passages)))

	limit := s.cfg.Generation.BatchConcurrency
	if limit < 1 {
		limit = 1
	}

	var (
		mu     sync.Mutex
		result = &BatchResult{}
		ids    = make([]string, len(passages))
	)

	var g errgroup.Group
	g.SetLimit(limit)
	for i, p := range passages {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			quiz, err := s.quizService.GenerateQuiz(ctx, p.Title, p.Text, count)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				s.logger.Error("Failed to generate quiz for passage",
					zap.String("title", p.Title),
					zap.Error(err))
				return nil
			}
			result.Generated++
			ids[i] = quiz.ID
			s.logger.Info("Generated quiz for passage",
				zap.String("title", p.Title),
				zap.String("quizID", quiz.ID),
				zap.Int("questions", len(quiz.Questions)))
			return nil
		})
	}
	_ = g.Wait()

	for _, id := range ids {
		if id != "" {
			result.QuizIDs = append(result.QuizIDs, id)
		}
	}

	s.logger.Info("Batch quiz generation finished",
		zap.Int("generated", result.Generated),
		zap.Int("failed", result.Failed),
		zap.Duration("elapsed", time.Since(start)))
	return result, ctx.Err()
}
