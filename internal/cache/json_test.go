package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"reading-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return v, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()
	quiz := domain.Quiz{ID: "01H", Title: "Museum", Questions: []domain.Question{{ID: "q1", QType: domain.QTypeCloze}}}

	require.NoError(t, SetJSON(ctx, c, QuizKey("01H"), quiz, time.Hour))
	assert.Equal(t, time.Hour, c.ttls[QuizKey("01H")])

	got, err := GetJSON[domain.Quiz](ctx, c, QuizKey("01H"))
	require.NoError(t, err)
	assert.Equal(t, quiz, *got)
}

func TestGetJSON_MissAndCorrupt(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()

	_, err := GetJSON[domain.Quiz](ctx, c, "absent")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))

	c.data["bad"] = []byte("{not json")
	_, err = GetJSON[domain.Quiz](ctx, c, "bad")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrCacheMiss))
}

func TestSetJSON_EncodeError(t *testing.T) {
	err := SetJSON(context.Background(), newMemoryCache(), "k", make(chan int), 0)
	assert.ErrorContains(t, err, "cache: encode k")
}
