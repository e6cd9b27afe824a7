package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/saas-journey/journey/pkg/register"
	"github.com/saas-journey/journey/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.SessionStore = NewSessionStore(provider)
	})
}

// SessionStore 处理journey_session表的操作
type SessionStore struct {
	CommonFields
}

// NewSessionStore 创建新的SessionStore实例
func NewSessionStore(provider SqlProviderAchieve) *SessionStore {
	repo := &SessionStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_SESSION)
	repo.SetAllColumns("id", "user_id", "token", "expires_at", "created_at")
	return repo
}

// Create 创建新的会话记录
func (s *SessionStore) Create(ctx context.Context, data types.Session) error {
	query := sq.Insert(s.GetTable()).
		Columns("user_id", "token", "expires_at", "created_at").
		Values(data.UserID, data.Token, data.ExpiresAt, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// GetByToken 根据token获取会话
func (s *SessionStore) GetByToken(ctx context.Context, token string) (*types.Session, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"token": token})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Session
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateExpiresAt 调整会话过期时间
func (s *SessionStore) UpdateExpiresAt(ctx context.Context, token string, expiresAt int64) error {
	query := sq.Update(s.GetTable()).Set("expires_at", expiresAt).Where(sq.Eq{"token": token})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Delete 删除会话
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"token": token})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// DeleteExpired 清理过期会话，返回删除的行数
func (s *SessionStore) DeleteExpired(ctx context.Context, before int64) (int64, error) {
	query := sq.Delete(s.GetTable()).Where(sq.Lt{"expires_at": before})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	result, err := s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
