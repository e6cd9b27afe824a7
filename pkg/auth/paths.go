package auth

import "strings"

const (
	LoginPath       = "/login"
	ProtectedPrefix = "/journal"
	DefaultLanding  = "/journal"
)

// 这些路径不携带会话语义，刷新中间件直接放行
var skipPrefixes = []string{
	"/static/",
	"/assets/",
	"/metrics",
	"/favicon.ico",
}

var skipSuffixes = []string{
	".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp",
}

// SkipSessionRefresh 判断请求路径是否跳过会话刷新
func SkipSessionRefresh(path string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	for _, suffix := range skipSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// RedirectTarget 会话刷新后的跳转决策：
// 未登录访问受保护路径跳登录页，已登录访问登录页跳日记首页。
func RedirectTarget(path string, authed bool) (string, bool) {
	if !authed && strings.HasPrefix(path, ProtectedPrefix) {
		return LoginPath, true
	}
	if authed && path == LoginPath {
		return DefaultLanding, true
	}
	return "", false
}
