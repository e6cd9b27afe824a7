package security

import (
	"time"
)

type TokenClaims struct {
	User       string            `json:"u"`   // 用户唯一标识
	Email      string            `json:"e"`   // 登录邮箱
	Fields     map[string]string `json:"f"`   // unsafe
	ExpireTime int64             `json:"exp"` // 过期时间 时间戳
	NotBefore  int64             `json:"nbf"` // 生效时间 时间戳
}

func NewTokenClaims(userID, email string, expireTime int64) TokenClaims {
	return TokenClaims{
		User:       userID,
		Email:      email,
		Fields:     map[string]string{},
		ExpireTime: expireTime,
		NotBefore:  time.Now().Unix() - 1,
	}
}

func (t TokenClaims) GetUser() string {
	return t.User
}

func (t TokenClaims) Field(key string) string {
	if t.Fields == nil {
		return ""
	}

	return t.Fields[key]
}
