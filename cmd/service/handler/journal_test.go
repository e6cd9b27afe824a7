package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRequestContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParseFilterCriteria(t *testing.T) {
	c := testRequestContext(t, "/journal?search=stripe&mood=motivated&tags=win")
	criteria := parseFilterCriteria(c)
	assert.Equal(t, "stripe", criteria.SearchText)
	assert.Equal(t, "motivated", criteria.Mood)
	assert.Equal(t, []string{"win"}, criteria.Tags)

	c = testRequestContext(t, "/journal")
	assert.True(t, parseFilterCriteria(c).IsEmpty())
}

func TestParseFilterCriteriaRepeatedTags(t *testing.T) {
	// 过滤表单的复选框按重复参数提交
	c := testRequestContext(t, "/journal?tags=win&tags=milestone")
	assert.Equal(t, []string{"win", "milestone"}, parseFilterCriteria(c).Tags)

	// 逗号分隔的写法也接受，两种可以混用
	c = testRequestContext(t, "/journal?tags=win,milestone&tags=lesson")
	assert.Equal(t, []string{"win", "milestone", "lesson"}, parseFilterCriteria(c).Tags)
}
