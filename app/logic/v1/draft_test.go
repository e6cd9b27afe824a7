package v1

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saas-journey/journey/pkg/types"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (m *memoryCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryCache) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return nil
}

func TestDraft_RoundTrip(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	draft := types.DraftEntry{
		Title:   "half-written",
		Content: "got interrupted mid sentence",
		Mood:    types.MOOD_CHALLENGING,
		Tags:    []string{types.TAG_LESSON},
	}
	require.NoError(t, saveDraft(ctx, cache, "u1", draft))

	got, err := getDraft(ctx, cache, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, draft, *got)
}

func TestDraft_MissingReturnsNil(t *testing.T) {
	got, err := getDraft(context.Background(), newMemoryCache(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraft_SaveOverwrites(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	require.NoError(t, saveDraft(ctx, cache, "u1", types.DraftEntry{Content: "first"}))
	require.NoError(t, saveDraft(ctx, cache, "u1", types.DraftEntry{Content: "second"}))

	got, err := getDraft(ctx, cache, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Content)
}

func TestDraft_ClearRemoves(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	require.NoError(t, saveDraft(ctx, cache, "u1", types.DraftEntry{Content: "doomed"}))
	require.NoError(t, clearDraft(ctx, cache, "u1"))

	got, err := getDraft(ctx, cache, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraft_CorruptPayloadDiscarded(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.SetEx(ctx, DraftCacheKey("u1"), "{not json", time.Minute))

	got, err := getDraft(ctx, cache, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// 损坏的值已被清掉
	_, err = cache.Get(ctx, DraftCacheKey("u1"))
	assert.Equal(t, redis.Nil, err)
}

func TestDraft_UsersAreIsolated(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	require.NoError(t, saveDraft(ctx, cache, "u1", types.DraftEntry{Content: "mine"}))

	got, err := getDraft(ctx, cache, "u2")
	require.NoError(t, err)
	assert.Nil(t, got)
}
