package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/saas-journey/journey/app/logic/v1"
	"github.com/saas-journey/journey/pkg/types"
)

func newTestContext(t *testing.T, method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	c.Request = req
	return c, w
}

func TestReplaceRequestCookie_RewritesExisting(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/journal")
	c.Request.AddCookie(&http.Cookie{Name: "journey_session", Value: "old-token"})
	c.Request.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})

	replaceRequestCookie(c, "journey_session", "new-token")

	got, err := c.Request.Cookie("journey_session")
	require.NoError(t, err)
	assert.Equal(t, "new-token", got.Value)

	theme, err := c.Request.Cookie("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Value)
}

func TestReplaceRequestCookie_AddsWhenMissing(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/journal")

	replaceRequestCookie(c, "journey_session", "fresh")

	got, err := c.Request.Cookie("journey_session")
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Value)
}

func TestCors_PreflightAborted(t *testing.T) {
	c, w := newTestContext(t, http.MethodOptions, "/api/v1/journal/entries")
	c.Request.Header.Set("Origin", "http://localhost:3000")

	Cors(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAcceptLanguage(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", types.LANGUAGE_EN_KEY},
		{"en-US,en;q=0.9", types.LANGUAGE_EN_KEY},
		{"zh-CN,zh;q=0.9", types.LANGUAGE_CN_KEY},
	}

	for _, tc := range cases {
		c, _ := newTestContext(t, http.MethodGet, "/journal")
		if tc.header != "" {
			c.Request.Header.Set("Accept-Language", tc.header)
		}

		AcceptLanguage()(c)

		got, exists := c.Get(v1.LANGUAGE_KEY)
		require.True(t, exists)
		assert.Equal(t, tc.want, got)
	}
}
