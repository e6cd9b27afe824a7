package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	v1 "github.com/saas-journey/journey/app/logic/v1"
	"github.com/saas-journey/journey/pkg/types"
)

func TestGetLangFromRequestOrDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(header string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/journal", nil)
		if header != "" {
			c.Request.Header.Set("Accept-Language", header)
		}
		return c
	}

	// 中间件注入的语言优先于请求头
	c := newCtx("en")
	c.Set(v1.LANGUAGE_KEY, types.LANGUAGE_CN_KEY)
	assert.Equal(t, types.LANGUAGE_CN_KEY, GetLangFromRequestOrDefault(c))

	// 未经过中间件时回退到请求头
	assert.Equal(t, "zh-CN", GetLangFromRequestOrDefault(newCtx("zh")))
	assert.Equal(t, "en", GetLangFromRequestOrDefault(newCtx("en")))
	assert.Equal(t, "en", GetLangFromRequestOrDefault(newCtx("fr-FR")))
	assert.Equal(t, "en", GetLangFromRequestOrDefault(newCtx("")))
}
