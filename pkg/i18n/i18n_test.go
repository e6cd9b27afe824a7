package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizerGet(t *testing.T) {
	l := NewLocalizer("en", "zh-CN")

	assert.Equal(t, "Please write something before saving.", l.Get("en", ERROR_CONTENT_REQUIRED))
	assert.Equal(t, "保存前请先写点内容。", l.Get("zh-CN", ERROR_CONTENT_REQUIRED))
}

func TestLocalizerUnknownLang(t *testing.T) {
	l := NewLocalizer("en")

	// unknown language falls back to the message id
	assert.Equal(t, ERROR_INTERNAL, l.Get("fr", ERROR_INTERNAL))
}

func TestLocalizerUnknownID(t *testing.T) {
	l := NewLocalizer("en")

	assert.Equal(t, "error.never.defined", l.Get("en", "error.never.defined"))
}
