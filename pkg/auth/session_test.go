package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saas-journey/journey/pkg/types"
)

type memoryCache struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (m *memoryCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	m.data[key] = value
	m.ttls[key] = expiresAt
	return nil
}

func (m *memoryCache) Del(ctx context.Context, key string) error {
	delete(m.data, key)
	delete(m.ttls, key)
	return nil
}

func (m *memoryCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	if _, ok := m.data[key]; !ok {
		return redis.Nil
	}
	m.ttls[key] = expiration
	return nil
}

type fakeSessionSource struct {
	sessions map[string]*types.Session
	users    map[string]*types.User
	created  []types.Session
}

func newFakeSessionSource() *fakeSessionSource {
	return &fakeSessionSource{
		sessions: make(map[string]*types.Session),
		users:    make(map[string]*types.User),
	}
}

func (f *fakeSessionSource) GetSessionByToken(ctx context.Context, token string) (*types.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return s, nil
}

func (f *fakeSessionSource) GetUser(ctx context.Context, id string) (*types.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeSessionSource) CreateSession(ctx context.Context, session types.Session) error {
	f.created = append(f.created, session)
	f.sessions[session.Token] = &session
	return nil
}

func (f *fakeSessionSource) UpdateSessionExpiry(ctx context.Context, token string, expiresAt int64) error {
	s, ok := f.sessions[token]
	if !ok {
		return sql.ErrNoRows
	}
	s.ExpiresAt = expiresAt
	return nil
}

func cacheMeta(t *testing.T, cache types.Cache, meta types.SessionMeta) {
	t.Helper()
	require.NoError(t, CacheSessionMeta(context.Background(), cache, meta))
}

func TestRefreshSessionEmptyToken(t *testing.T) {
	cache := newMemoryCache()
	source := newFakeSessionSource()

	meta, rotated, err := RefreshSession(context.Background(), "", cache, source, time.Hour)
	assert.Error(t, err)
	assert.Nil(t, meta)
	assert.Nil(t, rotated)
}

func TestRefreshSessionFreshToken(t *testing.T) {
	cache := newMemoryCache()
	source := newFakeSessionSource()

	expire := time.Now().Add(time.Hour).Unix()
	cacheMeta(t, cache, types.SessionMeta{UserID: "u1", Email: "o@example.com", Token: "tok", ExpireAt: expire})

	meta, rotated, err := RefreshSession(context.Background(), "tok", cache, source, time.Hour)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "u1", meta.UserID)
	assert.Nil(t, rotated, "a fresh session must not be rotated")
	assert.Empty(t, source.created)
}

func TestRefreshSessionRotation(t *testing.T) {
	cache := newMemoryCache()
	source := newFakeSessionSource()

	// 剩余有效期不足一半，应触发轮换
	expire := time.Now().Add(time.Minute * 10).Unix()
	source.sessions["old"] = &types.Session{UserID: "u1", Token: "old", ExpiresAt: expire}
	source.users["u1"] = &types.User{ID: "u1", Email: "o@example.com"}
	cacheMeta(t, cache, types.SessionMeta{UserID: "u1", Email: "o@example.com", Token: "old", ExpireAt: expire})

	meta, rotated, err := RefreshSession(context.Background(), "old", cache, source, time.Hour)
	require.NoError(t, err)
	require.NotNil(t, rotated)
	assert.NotEqual(t, "old", rotated.Token)
	assert.Equal(t, "u1", rotated.UserID)
	assert.Equal(t, rotated.Token, meta.Token)
	assert.Greater(t, rotated.ExpiresAt, expire)

	// 新会话已落库并写入缓存
	require.Len(t, source.created, 1)
	raw, err := cache.Get(context.Background(), SessionCacheKey(rotated.Token))
	require.NoError(t, err)
	var cached types.SessionMeta
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, "u1", cached.UserID)

	// 旧令牌在缓存与持久层都收缩到宽限期而不是立即删除
	assert.Equal(t, RotateGracePeriod, cache.ttls[SessionCacheKey("old")])
	graceDeadline := time.Now().Add(RotateGracePeriod).Unix()
	assert.InDelta(t, graceDeadline, source.sessions["old"].ExpiresAt, 2)
}

func TestRefreshSessionOldTokenLimitedToGraceAfterRotation(t *testing.T) {
	cache := newMemoryCache()
	source := newFakeSessionSource()

	expire := time.Now().Add(time.Minute * 10).Unix()
	source.sessions["old"] = &types.Session{UserID: "u1", Token: "old", ExpiresAt: expire}
	source.users["u1"] = &types.User{ID: "u1", Email: "o@example.com"}
	cacheMeta(t, cache, types.SessionMeta{UserID: "u1", Email: "o@example.com", Token: "old", ExpireAt: expire})

	_, rotated, err := RefreshSession(context.Background(), "old", cache, source, time.Hour)
	require.NoError(t, err)
	require.NotNil(t, rotated)

	// 模拟缓存失效后用旧令牌回源：有效期只剩宽限期，且不会再次轮换
	require.NoError(t, cache.Del(context.Background(), SessionCacheKey("old")))

	meta, again, err := RefreshSession(context.Background(), "old", cache, source, time.Hour)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Nil(t, again, "a grace-limited token must not mint another session")
	assert.Len(t, source.created, 1)
	assert.LessOrEqual(t, meta.ExpireAt, time.Now().Add(RotateGracePeriod).Unix()+2)
}

func TestRefreshSessionOldTokenRejectedAfterGrace(t *testing.T) {
	cache := newMemoryCache()
	source := newFakeSessionSource()

	// 宽限期已过的旧令牌，缓存无记录，持久层也已过期
	source.sessions["old"] = &types.Session{UserID: "u1", Token: "old", ExpiresAt: time.Now().Add(-time.Second).Unix()}
	source.users["u1"] = &types.User{ID: "u1", Email: "o@example.com"}

	meta, rotated, err := RefreshSession(context.Background(), "old", cache, source, time.Hour)
	assert.Error(t, err)
	assert.Nil(t, meta)
	assert.Nil(t, rotated)
}

func TestRefreshSessionExpired(t *testing.T) {
	cache := newMemoryCache()
	source := newFakeSessionSource()

	cacheMeta(t, cache, types.SessionMeta{UserID: "u1", Token: "tok", ExpireAt: time.Now().Add(time.Hour).Unix()})
	// 直接篡改缓存为已过期的元信息
	raw, _ := json.Marshal(types.SessionMeta{UserID: "u1", Token: "tok", ExpireAt: time.Now().Add(-time.Minute).Unix()})
	cache.data[SessionCacheKey("tok")] = string(raw)

	meta, rotated, err := RefreshSession(context.Background(), "tok", cache, source, time.Hour)
	assert.Error(t, err)
	assert.Nil(t, meta)
	assert.Nil(t, rotated)
}

func TestRefreshSessionRestoreFromStore(t *testing.T) {
	cache := newMemoryCache()
	source := newFakeSessionSource()

	expire := time.Now().Add(time.Hour).Unix()
	source.sessions["tok"] = &types.Session{UserID: "u1", Token: "tok", ExpiresAt: expire}
	source.users["u1"] = &types.User{ID: "u1", Email: "o@example.com"}

	meta, rotated, err := RefreshSession(context.Background(), "tok", cache, source, time.Hour)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "o@example.com", meta.Email)
	assert.Nil(t, rotated)

	// 回源成功后缓存被回填
	_, err = cache.Get(context.Background(), SessionCacheKey("tok"))
	assert.NoError(t, err)
}

func TestRefreshSessionUnknownToken(t *testing.T) {
	cache := newMemoryCache()
	source := newFakeSessionSource()

	meta, rotated, err := RefreshSession(context.Background(), "nope", cache, source, time.Hour)
	assert.Error(t, err)
	assert.Nil(t, meta)
	assert.Nil(t, rotated)
}

func TestRedirectTarget(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		authed   bool
		want     string
		redirect bool
	}{
		{"protected without session", "/journal", false, "/login", true},
		{"protected subpath without session", "/journal/new", false, "/login", true},
		{"login with session", "/login", true, "/journal", true},
		{"protected with session", "/journal/new", true, "", false},
		{"login without session", "/login", false, "", false},
		{"root", "/", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, redirect := RedirectTarget(tt.path, tt.authed)
			assert.Equal(t, tt.redirect, redirect)
			assert.Equal(t, tt.want, target)
		})
	}
}

func TestSkipSessionRefresh(t *testing.T) {
	assert.True(t, SkipSessionRefresh("/favicon.ico"))
	assert.True(t, SkipSessionRefresh("/static/app.css"))
	assert.True(t, SkipSessionRefresh("/assets/logo.png"))
	assert.True(t, SkipSessionRefresh("/anything/banner.webp"))
	assert.False(t, SkipSessionRefresh("/journal"))
	assert.False(t, SkipSessionRefresh("/login"))
}
