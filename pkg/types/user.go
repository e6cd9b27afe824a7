package types

type User struct {
	ID        string `json:"id" db:"id"`                 // 用户ID，主键
	Email     string `json:"email" db:"email"`           // 用户邮箱，唯一约束
	Salt      string `json:"-" db:"salt"`                // 密码盐
	Password  string `json:"-" db:"password"`            // 加盐后的密码摘要
	UpdatedAt int64  `json:"updated_at" db:"updated_at"` // 更新时间，Unix时间戳
	CreatedAt int64  `json:"created_at" db:"created_at"` // 创建时间，Unix时间戳
}

type Session struct {
	ID        int64  `json:"id" db:"id"`                 // 主键，自增ID
	UserID    string `json:"user_id" db:"user_id"`       // 会话所属用户
	Token     string `json:"token" db:"token"`           // 会话令牌，cookie 中保存的值
	ExpiresAt int64  `json:"expires_at" db:"expires_at"` // 过期时间，UNIX时间戳
	CreatedAt int64  `json:"created_at" db:"created_at"` // 创建时间，UNIX时间戳
}

// SessionMeta 缓存中的会话元信息，避免每次请求回源数据库
type SessionMeta struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	ExpireAt int64  `json:"expire_at"`
}

const (
	LANGUAGE_EN_KEY = "en"
	LANGUAGE_CN_KEY = "zh-CN"
)
