package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saas-journey/journey/app/core"
	"github.com/saas-journey/journey/pkg/auth"
	"github.com/saas-journey/journey/pkg/errors"
	"github.com/saas-journey/journey/pkg/i18n"
	"github.com/saas-journey/journey/pkg/types"
	"github.com/saas-journey/journey/pkg/utils"
)

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	return &AuthLogic{
		ctx:  ctx,
		core: core,
	}
}

type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	ExpireAt int64  `json:"expire_at"`
}

// Login 校验账号密码并签发新会话
func (l *AuthLogic) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("AuthLogic.Login.params", i18n.ERROR_INVALID_ACCOUNT, nil).Code(http.StatusUnauthorized)
	}

	user, err := l.core.Store().UserStore().GetByEmail(l.ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("AuthLogic.Login.UserStore.GetByEmail", i18n.ERROR_INVALID_ACCOUNT, err).Code(http.StatusUnauthorized)
		}
		return nil, errors.New("AuthLogic.Login.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}

	if user.Password != utils.GenUserPassword(user.Salt, password) {
		return nil, errors.New("AuthLogic.Login.password", i18n.ERROR_INVALID_ACCOUNT, nil).Code(http.StatusUnauthorized)
	}

	now := time.Now().Unix()
	session := types.Session{
		UserID:    user.ID,
		Token:     auth.GenSessionToken(user.ID),
		ExpiresAt: now + int64(l.core.SessionTTL().Seconds()),
		CreatedAt: now,
	}
	if err = l.core.Store().SessionStore().Create(l.ctx, session); err != nil {
		return nil, errors.New("AuthLogic.Login.SessionStore.Create", i18n.ERROR_INTERNAL, err)
	}

	meta := types.SessionMeta{
		UserID:   user.ID,
		Email:    user.Email,
		Token:    session.Token,
		ExpireAt: session.ExpiresAt,
	}
	if err = auth.CacheSessionMeta(l.ctx, l.core.Cache(), meta); err != nil {
		return nil, errors.New("AuthLogic.Login.CacheSessionMeta", i18n.ERROR_INTERNAL, err)
	}

	return &LoginResult{
		Token:    session.Token,
		UserID:   user.ID,
		Email:    user.Email,
		ExpireAt: session.ExpiresAt,
	}, nil
}

// signupAllowed 只有配置的owner邮箱可以注册，
// 未配置owner_email时拒绝所有注册而不是放开
func signupAllowed(ownerEmail, email string) bool {
	owner := strings.ToLower(strings.TrimSpace(ownerEmail))
	return owner != "" && email == owner
}

// Register 注册新用户，owner邮箱限制检查先于任何写入
func (l *AuthLogic) Register(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("AuthLogic.Register.params", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	if !signupAllowed(l.core.Cfg().Site.OwnerEmail, email) {
		return nil, errors.New("AuthLogic.Register.owner_check", i18n.ERROR_SIGNUP_RESTRICTED, nil).Code(http.StatusForbidden)
	}

	exist, err := l.core.Store().UserStore().GetByEmail(l.ctx, email)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.Register.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return nil, errors.New("AuthLogic.Register.exist", i18n.ERROR_EMAIL_ALREADY_REGISTED, nil).Code(http.StatusForbidden)
	}

	now := time.Now().Unix()
	salt := utils.RandomStr(10)
	user := types.User{
		ID:        utils.GenRandomID(),
		Email:     email,
		Salt:      salt,
		Password:  utils.GenUserPassword(salt, password),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = l.core.Store().UserStore().Create(l.ctx, user); err != nil {
		return nil, errors.New("AuthLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return l.Login(email, password)
}

// Logout 注销会话，同时清理持久层与缓存
func (l *AuthLogic) Logout(token string) error {
	if token == "" {
		return nil
	}

	if err := l.core.Store().SessionStore().Delete(l.ctx, token); err != nil {
		return errors.New("AuthLogic.Logout.SessionStore.Delete", i18n.ERROR_INTERNAL, err)
	}

	if err := l.core.Cache().Del(l.ctx, auth.SessionCacheKey(token)); err != nil && err != redis.Nil {
		return errors.New("AuthLogic.Logout.Cache.Del", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
