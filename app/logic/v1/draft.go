package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saas-journey/journey/app/core"
	"github.com/saas-journey/journey/pkg/errors"
	"github.com/saas-journey/journey/pkg/i18n"
	"github.com/saas-journey/journey/pkg/types"
)

// DRAFT_TTL 草稿保留时长，超过后自动过期
const DRAFT_TTL = time.Hour * 24 * 30

type DraftLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewDraftLogic(ctx context.Context, core *core.Core) *DraftLogic {
	return &DraftLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

func DraftCacheKey(userID string) string {
	return fmt.Sprintf("journal:draft:%s", userID)
}

// GetDraft 读取用户草稿，没有草稿或草稿损坏时返回nil
func (l *DraftLogic) GetDraft() (*types.DraftEntry, error) {
	user := l.GetUserInfo().User
	if user == "" {
		return nil, errors.New("DraftLogic.GetDraft.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	return getDraft(l.ctx, l.core.Cache(), user)
}

// SaveDraft 保存草稿，整体覆盖旧值
func (l *DraftLogic) SaveDraft(draft types.DraftEntry) error {
	user := l.GetUserInfo().User
	if user == "" {
		return errors.New("DraftLogic.SaveDraft.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	return saveDraft(l.ctx, l.core.Cache(), user, draft)
}

// ClearDraft 删除草稿，条目提交成功后调用
func (l *DraftLogic) ClearDraft() error {
	user := l.GetUserInfo().User
	if user == "" {
		return errors.New("DraftLogic.ClearDraft.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}
	return clearDraft(l.ctx, l.core.Cache(), user)
}

func getDraft(ctx context.Context, cache types.Cache, userID string) (*types.DraftEntry, error) {
	raw, err := cache.Get(ctx, DraftCacheKey(userID))
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.New("DraftLogic.getDraft.Cache.Get", i18n.ERROR_INTERNAL, err)
	}

	var draft types.DraftEntry
	if err = json.Unmarshal([]byte(raw), &draft); err != nil {
		// 草稿内容损坏时静默丢弃，不影响写作流程
		_ = cache.Del(ctx, DraftCacheKey(userID))
		return nil, nil
	}
	return &draft, nil
}

func saveDraft(ctx context.Context, cache types.Cache, userID string, draft types.DraftEntry) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return errors.New("DraftLogic.saveDraft.marshal", i18n.ERROR_INTERNAL, err)
	}

	if err = cache.SetEx(ctx, DraftCacheKey(userID), string(raw), DRAFT_TTL); err != nil {
		return errors.New("DraftLogic.saveDraft.Cache.SetEx", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func clearDraft(ctx context.Context, cache types.Cache, userID string) error {
	if err := cache.Del(ctx, DraftCacheKey(userID)); err != nil && err != redis.Nil {
		return errors.New("DraftLogic.clearDraft.Cache.Del", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
