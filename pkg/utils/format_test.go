package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"one minute", now.Add(-90 * time.Second), "1 minute ago"},
		{"minutes", now.Add(-10 * time.Minute), "10 minutes ago"},
		{"one hour", now.Add(-1 * time.Hour), "1 hour ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"one day", now.Add(-25 * time.Hour), "1 day ago"},
		{"days", now.Add(-72 * time.Hour), "3 days ago"},
		{"months", now.Add(-24 * 45 * time.Hour), "1 month ago"},
		{"years", now.Add(-24 * 400 * time.Hour), "1 year ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRelativeTime(tt.then, now))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 150))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	// 截断点落在空格上时先去掉尾部空白
	assert.Equal(t, "hello...", Truncate("hello world", 6))
}

func TestMoodEmoji(t *testing.T) {
	assert.Equal(t, "🚀", MoodEmoji("motivated"))
	assert.Equal(t, "💡", MoodEmoji("breakthrough"))
	assert.Equal(t, "", MoodEmoji("unknown"))
}

func TestTagColor(t *testing.T) {
	assert.Equal(t, "tag-green", TagColor("win"))
	assert.Equal(t, "tag-gray", TagColor("unknown"))
}
