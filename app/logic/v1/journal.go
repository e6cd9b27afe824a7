package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/saas-journey/journey/app/core"
	"github.com/saas-journey/journey/pkg/errors"
	"github.com/saas-journey/journey/pkg/i18n"
	"github.com/saas-journey/journey/pkg/types"
	"github.com/saas-journey/journey/pkg/utils"
)

type JournalLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewJournalLogic(ctx context.Context, core *core.Core) *JournalLogic {
	return &JournalLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// EntryPayload 条目写入的原始输入
type EntryPayload struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

// NormalizedEntry 校验清洗后的条目内容
type NormalizedEntry struct {
	Title   *string
	Content string
	Mood    *string
	Tags    []string
}

// NormalizeEntryPayload 清洗并校验条目输入。
// 内容为空白时直接拒绝，标题、心情为空白则落库为 NULL，
// 标签去重且只接受预定义集合。
func NormalizeEntryPayload(payload EntryPayload) (NormalizedEntry, error) {
	var res NormalizedEntry

	res.Content = strings.TrimSpace(payload.Content)
	if res.Content == "" {
		return res, errors.New("JournalLogic.NormalizeEntryPayload.content", i18n.ERROR_CONTENT_REQUIRED, nil).Code(http.StatusBadRequest)
	}

	if title := strings.TrimSpace(payload.Title); title != "" {
		res.Title = &title
	}

	if mood := strings.TrimSpace(payload.Mood); mood != "" {
		if !types.MOODS[mood] {
			return res, errors.New("JournalLogic.NormalizeEntryPayload.mood", i18n.ERROR_INVALID_MOOD, nil).Code(http.StatusBadRequest)
		}
		res.Mood = &mood
	}

	seen := make(map[string]bool)
	for _, raw := range payload.Tags {
		tag := strings.TrimSpace(raw)
		if tag == "" || seen[tag] {
			continue
		}
		if !types.TAGS[tag] {
			return res, errors.New("JournalLogic.NormalizeEntryPayload.tags", i18n.ERROR_INVALID_TAG, nil).Code(http.StatusBadRequest)
		}
		seen[tag] = true
		res.Tags = append(res.Tags, tag)
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}

	return res, nil
}

// CreateEntry 创建日记条目，成功后清理该用户的草稿
func (l *JournalLogic) CreateEntry(payload EntryPayload) (*types.JournalEntry, error) {
	user := l.GetUserInfo().User
	if user == "" {
		return nil, errors.New("JournalLogic.CreateEntry.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	normalized, err := NormalizeEntryPayload(payload)
	if err != nil {
		return nil, errors.Trace("JournalLogic.CreateEntry", err)
	}

	now := time.Now().Unix()
	entry := types.JournalEntry{
		ID:        utils.GenUniqIDStr(),
		UserID:    user,
		Title:     normalized.Title,
		Content:   normalized.Content,
		Mood:      normalized.Mood,
		Tags:      normalized.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = l.core.Store().JournalEntryStore().Create(l.ctx, entry); err != nil {
		return nil, errors.New("JournalLogic.CreateEntry.JournalEntryStore.Create", i18n.ERROR_INTERNAL, err)
	}
	l.core.Metrics().EntryWriteInc("create")

	// 草稿清理失败不影响条目创建
	_ = NewDraftLogic(l.ctx, l.core).ClearDraft()

	return &entry, nil
}

// GetEntry 获取单个条目，他人的条目表现为不存在
func (l *JournalLogic) GetEntry(id string) (*types.JournalEntry, error) {
	user := l.GetUserInfo().User
	if user == "" {
		return nil, errors.New("JournalLogic.GetEntry.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	entry, err := l.core.Store().JournalEntryStore().Get(l.ctx, user, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("JournalLogic.GetEntry.JournalEntryStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("JournalLogic.GetEntry.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return entry, nil
}

// UpdateEntry 更新条目并刷新updated_at，创建时间不变
func (l *JournalLogic) UpdateEntry(id string, payload EntryPayload) (*types.JournalEntry, error) {
	user := l.GetUserInfo().User
	if user == "" {
		return nil, errors.New("JournalLogic.UpdateEntry.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	normalized, err := NormalizeEntryPayload(payload)
	if err != nil {
		return nil, errors.Trace("JournalLogic.UpdateEntry", err)
	}

	if _, err = l.GetEntry(id); err != nil {
		return nil, errors.Trace("JournalLogic.UpdateEntry", err)
	}

	if err = l.core.Store().JournalEntryStore().Update(l.ctx, user, id, normalized.Title, normalized.Content, normalized.Mood, normalized.Tags); err != nil {
		return nil, errors.New("JournalLogic.UpdateEntry.JournalEntryStore.Update", i18n.ERROR_INTERNAL, err)
	}
	l.core.Metrics().EntryWriteInc("update")

	entry, err := l.GetEntry(id)
	if err != nil {
		return nil, errors.Trace("JournalLogic.UpdateEntry", err)
	}
	return entry, nil
}

// DeleteEntry 删除条目
func (l *JournalLogic) DeleteEntry(id string) error {
	user := l.GetUserInfo().User
	if user == "" {
		return errors.New("JournalLogic.DeleteEntry.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	if _, err := l.GetEntry(id); err != nil {
		return errors.Trace("JournalLogic.DeleteEntry", err)
	}

	if err := l.core.Store().JournalEntryStore().Delete(l.ctx, user, id); err != nil {
		return errors.New("JournalLogic.DeleteEntry.JournalEntryStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	l.core.Metrics().EntryWriteInc("delete")
	return nil
}

type ListEntriesResult struct {
	List     []*types.JournalEntry `json:"list"`
	Total    uint64                `json:"total"`
	Filtered int                   `json:"filtered"`
}

// ListEntries 按创建时间倒序列出条目，filter为空时返回全部
func (l *JournalLogic) ListEntries(criteria types.FilterCriteria, page, pageSize uint64) (*ListEntriesResult, error) {
	user := l.GetUserInfo().User
	if user == "" {
		return nil, errors.New("JournalLogic.ListEntries.check", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	// 过滤是在全量列表上做的，有过滤条件时不能分页取子集
	listPage, listPageSize := page, pageSize
	if !criteria.IsEmpty() {
		listPage, listPageSize = types.NO_PAGINATION, types.NO_PAGINATION
	}

	list, err := l.core.Store().JournalEntryStore().List(l.ctx, user, listPage, listPageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.ListEntries.JournalEntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().JournalEntryStore().Total(l.ctx, user)
	if err != nil {
		return nil, errors.New("JournalLogic.ListEntries.JournalEntryStore.Total", i18n.ERROR_INTERNAL, err)
	}

	filtered := FilterEntries(list, criteria)
	if filtered == nil {
		filtered = []*types.JournalEntry{}
	}

	matched := len(filtered)
	if !criteria.IsEmpty() && pageSize != types.NO_PAGINATION {
		filtered = lo.Subset(filtered, int((page-1)*pageSize), uint(pageSize))
	}

	return &ListEntriesResult{
		List:     filtered,
		Total:    total,
		Filtered: matched,
	}, nil
}
