package core

import (
	"context"

	"github.com/saas-journey/journey/pkg/auth"
	"github.com/saas-journey/journey/pkg/types"
)

type storeSessionSource struct {
	core *Core
}

func (s *storeSessionSource) GetSessionByToken(ctx context.Context, token string) (*types.Session, error) {
	return s.core.Store().SessionStore().GetByToken(ctx, token)
}

func (s *storeSessionSource) GetUser(ctx context.Context, id string) (*types.User, error) {
	return s.core.Store().UserStore().GetUser(ctx, id)
}

func (s *storeSessionSource) CreateSession(ctx context.Context, session types.Session) error {
	return s.core.Store().SessionStore().Create(ctx, session)
}

func (s *storeSessionSource) UpdateSessionExpiry(ctx context.Context, token string, expiresAt int64) error {
	return s.core.Store().SessionStore().UpdateExpiresAt(ctx, token, expiresAt)
}

func (s *Core) SessionSource() auth.SessionSource {
	return &storeSessionSource{core: s}
}
