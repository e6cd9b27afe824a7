package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saas-journey/journey/pkg/errors"
	"github.com/saas-journey/journey/pkg/i18n"
	"github.com/saas-journey/journey/pkg/types"
	"github.com/saas-journey/journey/pkg/utils"
)

// RotateGracePeriod 轮换后旧令牌的并发请求宽限期
const RotateGracePeriod = time.Minute * 5

// SessionSource 会话回源接口，缓存未命中时从持久层恢复会话
type SessionSource interface {
	GetSessionByToken(ctx context.Context, token string) (*types.Session, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	CreateSession(ctx context.Context, session types.Session) error
	UpdateSessionExpiry(ctx context.Context, token string, expiresAt int64) error
}

func SessionCacheKey(token string) string {
	return fmt.Sprintf("session:token:%s", utils.MD5(token))
}

func GenSessionToken(userID string) string {
	return utils.MD5(userID + utils.GenRandomID())
}

// ValidateSessionFromCache 从缓存中验证会话令牌
func ValidateSessionFromCache(ctx context.Context, token string, cache types.Cache) (*types.SessionMeta, error) {
	if token == "" {
		return nil, errors.New("auth.ValidateSessionFromCache.empty_token", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	metaStr, err := cache.Get(ctx, SessionCacheKey(token))
	if err != nil && err != redis.Nil {
		return nil, errors.New("auth.ValidateSessionFromCache.cache_get", i18n.ERROR_INTERNAL, err)
	}

	if metaStr == "" {
		return nil, errors.New("auth.ValidateSessionFromCache.session_not_found", i18n.ERROR_UNAUTHORIZED, fmt.Errorf("nil session")).Code(http.StatusUnauthorized)
	}

	var meta types.SessionMeta
	if err := json.Unmarshal([]byte(metaStr), &meta); err != nil {
		return nil, errors.New("auth.ValidateSessionFromCache.unmarshal", i18n.ERROR_INTERNAL, err).Code(http.StatusUnauthorized)
	}

	return &meta, nil
}

// CacheSessionMeta 将会话元信息写入缓存，有效期对齐会话过期时间
func CacheSessionMeta(ctx context.Context, cache types.Cache, meta types.SessionMeta) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return err
	}

	remaining := time.Until(time.Unix(meta.ExpireAt, 0))
	if remaining <= 0 {
		return nil
	}
	return cache.SetEx(ctx, SessionCacheKey(meta.Token), string(raw), remaining)
}

// RefreshSession 重新校验当前会话并在需要时轮换令牌。
//
// 会话剩余有效期不足一半时签发新令牌，旧令牌保留一个短暂的宽限期，
// 避免同一浏览器的并发请求在轮换瞬间掉线。返回的 rotated 非空时，
// 调用方必须把新令牌同时写回请求与响应。
func RefreshSession(ctx context.Context, token string, cache types.Cache, source SessionSource, ttl time.Duration) (*types.SessionMeta, *types.Session, error) {
	meta, err := ValidateSessionFromCache(ctx, token, cache)
	if err != nil {
		if token == "" {
			return nil, nil, errors.Trace("auth.RefreshSession", err)
		}

		meta, err = restoreSessionMeta(ctx, token, cache, source)
		if err != nil {
			return nil, nil, errors.Trace("auth.RefreshSession", err)
		}
	}

	now := time.Now().Unix()
	if meta.ExpireAt <= now {
		return nil, nil, errors.New("auth.RefreshSession.expired", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	remaining := meta.ExpireAt - now
	if remaining*2 >= int64(ttl.Seconds()) {
		return meta, nil, nil
	}
	// 剩余不超过宽限期的是已被轮换收缩的旧令牌，
	// 只放行不再轮换，否则宽限期内每个请求都会新开会话
	if remaining <= int64(RotateGracePeriod.Seconds()) {
		return meta, nil, nil
	}

	rotated := types.Session{
		UserID:    meta.UserID,
		Token:     GenSessionToken(meta.UserID),
		ExpiresAt: now + int64(ttl.Seconds()),
		CreatedAt: now,
	}
	if err := source.CreateSession(ctx, rotated); err != nil {
		// 轮换失败不影响本次请求，沿用旧会话
		slog.Error("session rotation failed", slog.String("user", meta.UserID), slog.Any("error", err))
		return meta, nil, nil
	}

	newMeta := types.SessionMeta{
		UserID:   meta.UserID,
		Email:    meta.Email,
		Token:    rotated.Token,
		ExpireAt: rotated.ExpiresAt,
	}
	if err := CacheSessionMeta(ctx, cache, newMeta); err != nil {
		slog.Error("failed to cache rotated session", slog.String("user", meta.UserID), slog.Any("error", err))
	}
	// 旧令牌在缓存和持久层都收缩到宽限期，
	// 否则缓存失效后回源会让旧令牌以完整有效期复活
	if err := cache.Expire(ctx, SessionCacheKey(token), RotateGracePeriod); err != nil && err != redis.Nil {
		slog.Error("failed to shrink old session ttl", slog.Any("error", err))
	}
	if err := source.UpdateSessionExpiry(ctx, token, now+int64(RotateGracePeriod.Seconds())); err != nil {
		slog.Error("failed to shrink old session expiry", slog.String("user", meta.UserID), slog.Any("error", err))
	}

	return &newMeta, &rotated, nil
}

func restoreSessionMeta(ctx context.Context, token string, cache types.Cache, source SessionSource) (*types.SessionMeta, error) {
	session, err := source.GetSessionByToken(ctx, token)
	if err != nil {
		return nil, errors.New("auth.restoreSessionMeta.GetSessionByToken", i18n.ERROR_UNAUTHORIZED, err).Code(http.StatusUnauthorized)
	}

	if session == nil || session.ExpiresAt <= time.Now().Unix() {
		return nil, errors.New("auth.restoreSessionMeta.expired", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	user, err := source.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, errors.New("auth.restoreSessionMeta.GetUser", i18n.ERROR_INTERNAL, err)
	}

	meta := types.SessionMeta{
		UserID:   session.UserID,
		Email:    user.Email,
		Token:    session.Token,
		ExpireAt: session.ExpiresAt,
	}
	if err := CacheSessionMeta(ctx, cache, meta); err != nil {
		slog.Error("failed to cache session meta", slog.Any("error", err))
	}
	return &meta, nil
}
