package v1

import (
	"context"
	"log/slog"

	"github.com/saas-journey/journey/app/core"
	"github.com/saas-journey/journey/pkg/security"
)

type _userInfo struct {
	ctx  context.Context
	core *core.Core
	u    *security.TokenClaims
}

func (u *_userInfo) GetUserInfo() security.TokenClaims {
	return *u.u
}

func SetupUserInfo(ctx context.Context, core *core.Core) UserInfo {
	userInfo, ok := InjectTokenClaim(ctx)
	if !ok {
		slog.Error("Not found user in context", slog.String("component", "logic.v1.setupUserInfo"))
		userInfo = security.TokenClaims{}
	}
	return &_userInfo{
		u:    &userInfo,
		core: core,
	}
}

type UserInfo interface {
	GetUserInfo() security.TokenClaims
}
