package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"reading-quiz/internal/cache"
	"reading-quiz/internal/config"
	"reading-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuizCacheService_NilCache(t *testing.T) {
	svc := NewQuizCacheService(nil, nil)
	ctx := context.Background()

	assert.Nil(t, svc.GetQuiz(ctx, "q"))
	assert.Nil(t, svc.GetAttempt(ctx, "a"))
	_, ok := svc.GetExport(ctx, "q", "quiz")
	assert.False(t, ok)
	svc.PutQuiz(ctx, museumQuiz())
	svc.PutAttempt(ctx, domain.NewAttempt("a", "q", "", nil))
	svc.PutExport(ctx, "q", "quiz", "body")
}

func TestQuizCacheService_TTLFallback(t *testing.T) {
	mockCache := new(MockCache)
	cfg := &config.Config{CacheTTLs: config.CacheTTLConfig{Quiz: "soon"}}
	svc := NewQuizCacheService(mockCache, cfg)

	mockCache.On("Set", mock.Anything, cache.ExportKey("q", "quiz"), []byte("body"), DefaultQuizCacheTTL).Return(nil)
	svc.PutExport(context.Background(), "q", "quiz", "body")
	mockCache.AssertExpectations(t)
}

func TestQuizCacheService_AttemptRoundTrip(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewQuizCacheService(mockCache, testConfig())
	ctx := context.Background()

	attempt := domain.NewAttempt("a1", "quiz-1", "Ada", nil)
	raw, err := json.Marshal(attempt)
	require.NoError(t, err)
	key := cache.AttemptKey("a1")

	mockCache.On("Set", mock.Anything, key, raw, time.Hour).Return(nil)
	mockCache.On("Get", mock.Anything, key).Return(raw, nil)

	svc.PutAttempt(ctx, attempt)
	got := svc.GetAttempt(ctx, "a1")
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.StudentName)
	mockCache.AssertExpectations(t)
}

func TestQuizCacheService_CorruptEntryIsAMiss(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewQuizCacheService(mockCache, testConfig())

	mockCache.On("Get", mock.Anything, cache.QuizKey("q")).Return([]byte("{not json"), nil)
	mockCache.On("Get", mock.Anything, cache.ExportKey("q", "quiz")).Return(nil, errors.New("timeout"))

	assert.Nil(t, svc.GetQuiz(context.Background(), "q"))
	_, ok := svc.GetExport(context.Background(), "q", "quiz")
	assert.False(t, ok)
}
