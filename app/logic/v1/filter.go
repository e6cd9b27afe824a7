package v1

import (
	"strings"

	"github.com/samber/lo"

	"github.com/saas-journey/journey/pkg/types"
)

// FilterEntries 在内存中按条件过滤条目，不改变排序。
// 文本匹配标题或内容（大小写不敏感），心情精确匹配，
// 标签为AND语义：条目必须包含所有选中标签。
func FilterEntries(entries []*types.JournalEntry, criteria types.FilterCriteria) []*types.JournalEntry {
	if criteria.IsEmpty() {
		return entries
	}

	// 搜索串原样匹配，不做trim
	search := strings.ToLower(criteria.SearchText)

	return lo.Filter(entries, func(entry *types.JournalEntry, _ int) bool {
		if entry == nil {
			return false
		}

		if search != "" {
			title := ""
			if entry.Title != nil {
				title = *entry.Title
			}
			if !strings.Contains(strings.ToLower(title), search) &&
				!strings.Contains(strings.ToLower(entry.Content), search) {
				return false
			}
		}

		if criteria.Mood != "" {
			if entry.Mood == nil || *entry.Mood != criteria.Mood {
				return false
			}
		}

		for _, tag := range criteria.Tags {
			if !lo.Contains(entry.Tags, tag) {
				return false
			}
		}

		return true
	})
}
