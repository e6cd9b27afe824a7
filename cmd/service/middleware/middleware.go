package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/saas-journey/journey/app/core"
	v1 "github.com/saas-journey/journey/app/logic/v1"
	"github.com/saas-journey/journey/app/response"
	"github.com/saas-journey/journey/pkg/auth"
	"github.com/saas-journey/journey/pkg/errors"
	"github.com/saas-journey/journey/pkg/i18n"
	"github.com/saas-journey/journey/pkg/security"
	"github.com/saas-journey/journey/pkg/types"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

// AcceptLanguage 目前服务端支持 en: English, zh-CN: 简体中文
func AcceptLanguage() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lang := ctx.Request.Header.Get("Accept-Language")
		ctx.Set(v1.LANGUAGE_KEY, lo.If(strings.Contains(lang, "zh"), types.LANGUAGE_CN_KEY).Else(types.LANGUAGE_EN_KEY))
	}
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

// RequestMetrics 记录每个请求的响应耗时，4xx/5xx额外计入错误数
func RequestMetrics(appCore *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := appCore.Metrics().ApiResponseTimer(c.FullPath())
		c.Next()
		timer.ObserveDuration()

		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			appCore.Metrics().ApiErrorInc(c.Request.Method, c.FullPath(), status)
		}
	}
}

func setTokenClaims(c *gin.Context, meta *types.SessionMeta) {
	claims := security.NewTokenClaims(meta.UserID, meta.Email, meta.ExpireAt)
	c.Set(v1.TOKEN_CONTEXT_KEY, claims)
	c.Set("user", meta.UserID)
}

func setSessionCookie(c *gin.Context, core *core.Core, token string, maxAge int) {
	cfg := core.Cfg().Session
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Name(), token, maxAge, "/", cfg.CookieDomain, cfg.CookieSecure, true)
}

// replaceRequestCookie 轮换后把新令牌写回当前请求，
// 后续handler读到的就是新会话
func replaceRequestCookie(c *gin.Context, name, value string) {
	cookies := c.Request.Cookies()
	c.Request.Header.Del("Cookie")
	replaced := false
	for _, ck := range cookies {
		if ck.Name == name {
			ck.Value = value
			replaced = true
		}
		c.Request.AddCookie(ck)
	}
	if !replaced {
		c.Request.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

// SessionRefresh 页面请求的会话刷新中间件。
// 每个请求重新校验会话，必要时轮换令牌并把新令牌同时
// 写回请求与响应，最后执行登录态相关的跳转规则。
func SessionRefresh(appCore *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if auth.SkipSessionRefresh(path) {
			return
		}

		token, _ := c.Cookie(appCore.Cfg().Session.Name())

		var authed bool
		if token != "" {
			meta, rotated, err := auth.RefreshSession(c, token, appCore.Cache(), appCore.SessionSource(), appCore.SessionTTL())
			if err == nil {
				authed = true
				setTokenClaims(c, meta)
				appCore.Metrics().SessionRefreshedInc(rotated != nil)

				if rotated != nil {
					replaceRequestCookie(c, appCore.Cfg().Session.Name(), rotated.Token)
					setSessionCookie(c, appCore, rotated.Token, int(appCore.SessionTTL().Seconds()))
				}
			}
			// 会话校验失败一律视为未登录，不区分失败原因
		}

		if target, ok := auth.RedirectTarget(path, authed); ok {
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
	}
}

// Authorization API请求的会话校验中间件，未登录返回401
func Authorization(appCore *core.Core) gin.HandlerFunc {
	tracePrefix := "middleware.Authorization"
	return func(c *gin.Context) {
		token, _ := c.Cookie(appCore.Cfg().Session.Name())
		if token == "" {
			token = c.GetHeader("Authorization")
			token = strings.TrimPrefix(token, "Bearer ")
		}

		if token == "" {
			response.APIError(c, errors.New(tracePrefix, i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
			return
		}

		meta, rotated, err := auth.RefreshSession(c, token, appCore.Cache(), appCore.SessionSource(), appCore.SessionTTL())
		if err != nil {
			response.APIError(c, errors.Trace(tracePrefix, err))
			return
		}

		setTokenClaims(c, meta)
		appCore.Metrics().SessionRefreshedInc(rotated != nil)
		if rotated != nil {
			replaceRequestCookie(c, appCore.Cfg().Session.Name(), rotated.Token)
			setSessionCookie(c, appCore, rotated.Token, int(appCore.SessionTTL().Seconds()))
		}
	}
}

// ClearSessionCookie 注销后清除浏览器中的会话cookie
func ClearSessionCookie(c *gin.Context, appCore *core.Core) {
	setSessionCookie(c, appCore, "", -1)
}
