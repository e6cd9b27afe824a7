package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/saas-journey/journey/pkg/register"
	"github.com/saas-journey/journey/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.JournalEntryStore = NewJournalEntryStore(provider)
	})
}

// JournalEntryStore 处理journey_journal_entry表的操作
// 所有查询都带 user_id 条件，查不到他人的条目
type JournalEntryStore struct {
	CommonFields
}

// NewJournalEntryStore 创建新的JournalEntryStore实例
func NewJournalEntryStore(provider SqlProviderAchieve) *JournalEntryStore {
	repo := &JournalEntryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNAL_ENTRY)
	repo.SetAllColumns("id", "user_id", "title", "content", "mood", "tags", "created_at", "updated_at")
	return repo
}

// Create 创建新的日记条目
func (s *JournalEntryStore) Create(ctx context.Context, data types.JournalEntry) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	if data.Tags == nil {
		data.Tags = pq.StringArray{}
	}

	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "title", "content", "mood", "tags", "created_at", "updated_at").
		Values(data.ID, data.UserID, data.Title, data.Content, data.Mood, data.Tags, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Get 根据ID获取日记条目
func (s *JournalEntryStore) Get(ctx context.Context, userID, id string) (*types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.JournalEntry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update 更新日记条目内容并刷新updated_at
func (s *JournalEntryStore) Update(ctx context.Context, userID, id string, title *string, content string, mood *string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	query := sq.Update(s.GetTable()).
		Set("title", title).
		Set("content", content).
		Set("mood", mood).
		Set("tags", pq.StringArray(tags)).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Delete 删除日记条目
func (s *JournalEntryStore) Delete(ctx context.Context, userID, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// List 按创建时间倒序获取用户的日记条目
func (s *JournalEntryStore) List(ctx context.Context, userID string, page, pageSize uint64) ([]*types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if page != types.NO_PAGINATION || pageSize != types.NO_PAGINATION {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []*types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// Total 获取用户的日记条目总数
func (s *JournalEntryStore) Total(ctx context.Context, userID string) (uint64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total uint64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}
