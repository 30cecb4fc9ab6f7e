package service

import (
	"context"
	"errors"
	"time"

	"reading-quiz/internal/cache"
	"reading-quiz/internal/config"
	"reading-quiz/internal/domain"
	"reading-quiz/internal/logger"

	"go.uber.org/zap"
)

// DefaultQuizCacheTTL applies when cache_ttls.quiz is unset or malformed.
const DefaultQuizCacheTTL = 24 * time.Hour

// QuizCacheService keeps quizzes, attempts and rendered exports in the shared cache.
// Neither quizzes nor attempts change once stored, so entries are only ever written
// once and expire by TTL. Every method is a no-op when no cache is configured,
// and cache failures are logged rather than returned.
type QuizCacheService interface {
	GetQuiz(ctx context.Context, quizID string) *domain.Quiz
	PutQuiz(ctx context.Context, quiz *domain.Quiz)
	GetAttempt(ctx context.Context, attemptID string) *domain.Attempt
	PutAttempt(ctx context.Context, attempt *domain.Attempt)
	GetExport(ctx context.Context, quizID, kind string) (string, bool)
	PutExport(ctx context.Context, quizID, kind, body string)
}

type quizCacheService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizCacheService creates a QuizCacheService. cache may be nil.
func NewQuizCacheService(c domain.Cache, cfg *config.Config) QuizCacheService {
	ttl := DefaultQuizCacheTTL
	if cfg != nil {
		ttl = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Quiz, DefaultQuizCacheTTL)
	}
	return &quizCacheService{cache: c, ttl: ttl}
}

func (s *quizCacheService) GetQuiz(ctx context.Context, quizID string) *domain.Quiz {
	if s.cache == nil {
		return nil
	}
	key := cache.QuizKey(quizID)
	quiz, err := cache.GetJSON[domain.Quiz](ctx, s.cache, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Quiz cache miss", zap.String("key", key))
		} else {
			logger.Get().Warn("Quiz cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	return quiz
}

func (s *quizCacheService) PutQuiz(ctx context.Context, quiz *domain.Quiz) {
	if s.cache == nil || quiz == nil {
		return
	}
	key := cache.QuizKey(quiz.ID)
	if err := cache.SetJSON(ctx, s.cache, key, quiz, s.ttl); err != nil {
		logger.Get().Warn("Failed to cache quiz", zap.String("key", key), zap.Error(err))
	}
}

func (s *quizCacheService) GetAttempt(ctx context.Context, attemptID string) *domain.Attempt {
	if s.cache == nil {
		return nil
	}
	key := cache.AttemptKey(attemptID)
	attempt, err := cache.GetJSON[domain.Attempt](ctx, s.cache, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Attempt cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	return attempt
}

func (s *quizCacheService) PutAttempt(ctx context.Context, attempt *domain.Attempt) {
	if s.cache == nil || attempt == nil {
		return
	}
	key := cache.AttemptKey(attempt.ID)
	if err := cache.SetJSON(ctx, s.cache, key, attempt, s.ttl); err != nil {
		logger.Get().Warn("Failed to cache attempt", zap.String("key", key), zap.Error(err))
	}
}

func (s *quizCacheService) GetExport(ctx context.Context, quizID, kind string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	key := cache.ExportKey(quizID, kind)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Export cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return string(raw), true
}

func (s *quizCacheService) PutExport(ctx context.Context, quizID, kind, body string) {
	if s.cache == nil {
		return
	}
	key := cache.ExportKey(quizID, kind)
	if err := s.cache.Set(ctx, key, []byte(body), s.ttl); err != nil {
		logger.Get().Warn("Failed to cache export", zap.String("key", key), zap.Error(err))
	}
}
