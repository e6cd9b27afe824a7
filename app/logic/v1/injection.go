package v1

import (
	"context"

	"github.com/saas-journey/journey/pkg/security"
)

const (
	TOKEN_CONTEXT_KEY = "__journey.access_token"
	LANGUAGE_KEY      = "__journey.accept_language"
)

// InjectTokenClaim get user token claims from context
func InjectTokenClaim(ctx context.Context) (security.TokenClaims, bool) {
	val, ok := ctx.Value(TOKEN_CONTEXT_KEY).(security.TokenClaims)
	return val, ok
}

// InjectLanguage AcceptLanguage中间件协商后的客户端语言
func InjectLanguage(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(LANGUAGE_KEY).(string)
	return val, ok
}
