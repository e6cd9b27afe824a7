package utils

import (
	"fmt"
	"strings"
	"time"
)

const DEFAULT_TRUNCATE_LENGTH = 150

// FormatDate 绝对时间展示，例如 "Mar 15, 2024 at 3:30 PM"
func FormatDate(unix int64) string {
	return time.Unix(unix, 0).Format("Jan 2, 2006 at 3:04 PM")
}

// FormatRelativeTime 相对时间展示，例如 "2 hours ago"
func FormatRelativeTime(unix int64) string {
	return formatRelativeTime(time.Unix(unix, 0), time.Now())
}

func formatRelativeTime(then, now time.Time) string {
	seconds := int64(now.Sub(then).Seconds())
	if seconds < 60 {
		return "just now"
	}

	minutes := seconds / 60
	if minutes < 60 {
		return pluralize(minutes, "minute")
	}

	hours := minutes / 60
	if hours < 24 {
		return pluralize(hours, "hour")
	}

	days := hours / 24
	if days < 30 {
		return pluralize(days, "day")
	}

	months := days / 30
	if months < 12 {
		return pluralize(months, "month")
	}

	return pluralize(months/12, "year")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// Truncate 截断超长文本并追加省略号
func Truncate(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return strings.TrimSpace(string(runes[:length])) + "..."
}

var moodEmojis = map[string]string{
	"challenging":  "😤",
	"optimistic":   "🌟",
	"breakthrough": "💡",
	"frustrated":   "😓",
	"motivated":    "🚀",
}

func MoodEmoji(mood string) string {
	return moodEmojis[mood]
}

var tagColors = map[string]string{
	"win":       "tag-green",
	"lesson":    "tag-blue",
	"challenge": "tag-orange",
	"milestone": "tag-purple",
	"idea":      "tag-yellow",
}

func TagColor(tag string) string {
	if c, ok := tagColors[tag]; ok {
		return c
	}
	return "tag-gray"
}
