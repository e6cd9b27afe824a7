package types

import (
	"github.com/lib/pq"
)

type JournalEntry struct {
	ID        string         `json:"id" db:"id"`
	UserID    string         `json:"user_id" db:"user_id"`
	Title     *string        `json:"title" db:"title"`
	Content   string         `json:"content" db:"content"`
	Mood      *string        `json:"mood" db:"mood"`
	Tags      pq.StringArray `json:"tags" db:"tags"`
	CreatedAt int64          `json:"created_at" db:"created_at"`
	UpdatedAt int64          `json:"updated_at" db:"updated_at"`
}

const (
	MOOD_MOTIVATED    = "motivated"
	MOOD_OPTIMISTIC   = "optimistic"
	MOOD_BREAKTHROUGH = "breakthrough"
	MOOD_CHALLENGING  = "challenging"
	MOOD_FRUSTRATED   = "frustrated"
)

const (
	TAG_WIN       = "win"
	TAG_LESSON    = "lesson"
	TAG_CHALLENGE = "challenge"
	TAG_MILESTONE = "milestone"
	TAG_IDEA      = "idea"
)

var MOODS = map[string]bool{
	MOOD_MOTIVATED:    true,
	MOOD_OPTIMISTIC:   true,
	MOOD_BREAKTHROUGH: true,
	MOOD_CHALLENGING:  true,
	MOOD_FRUSTRATED:   true,
}

// MOOD_LIST 表单展示顺序
var MOOD_LIST = []string{
	MOOD_MOTIVATED,
	MOOD_OPTIMISTIC,
	MOOD_BREAKTHROUGH,
	MOOD_CHALLENGING,
	MOOD_FRUSTRATED,
}

var TAG_LIST = []string{
	TAG_WIN,
	TAG_LESSON,
	TAG_CHALLENGE,
	TAG_MILESTONE,
	TAG_IDEA,
}

var TAGS = map[string]bool{
	TAG_WIN:       true,
	TAG_LESSON:    true,
	TAG_CHALLENGE: true,
	TAG_MILESTONE: true,
	TAG_IDEA:      true,
}

// FilterCriteria 列表页筛选条件，仅存在于一次浏览会话中，不做持久化
type FilterCriteria struct {
	SearchText string   `json:"search_text" form:"search"`
	Mood       string   `json:"mood" form:"mood"`
	Tags       []string `json:"tags" form:"tags"`
}

func (c FilterCriteria) IsEmpty() bool {
	return c.SearchText == "" && c.Mood == "" && len(c.Tags) == 0
}

// DraftEntry 未提交的新日记草稿，整体覆盖写入，读取失败视为无草稿
type DraftEntry struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

const NO_PAGINATION = 0
