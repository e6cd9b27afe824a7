package store

import (
	"context"

	"github.com/saas-journey/journey/pkg/sqlstore"
	"github.com/saas-journey/journey/pkg/types"
)

// JournalEntryStore 日记条目存储，所有查询都以 user_id 约束，
// 访问他人条目表现为不存在而不是无权限
type JournalEntryStore interface {
	sqlstore.SqlCommons
	// Create 创建新的日记条目
	Create(ctx context.Context, data types.JournalEntry) error
	// Get 根据ID获取日记条目
	Get(ctx context.Context, userID, id string) (*types.JournalEntry, error)
	// Update 更新日记条目并刷新 updated_at
	Update(ctx context.Context, userID, id string, title *string, content string, mood *string, tags []string) error
	// Delete 删除日记条目
	Delete(ctx context.Context, userID, id string) error
	// List 按创建时间倒序获取日记条目列表
	List(ctx context.Context, userID string, page, pageSize uint64) ([]*types.JournalEntry, error)
	Total(ctx context.Context, userID string) (uint64, error)
}

type UserStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, user types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
}

type SessionStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, session types.Session) error
	GetByToken(ctx context.Context, token string) (*types.Session, error)
	// UpdateExpiresAt 调整会话过期时间，轮换后用来收缩旧令牌
	UpdateExpiresAt(ctx context.Context, token string, expiresAt int64) error
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, before int64) (int64, error)
}
