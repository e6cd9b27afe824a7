package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saas-journey/journey/pkg/errors"
	"github.com/saas-journey/journey/pkg/types"
)

func TestNormalizeEntryPayload_TrimsFields(t *testing.T) {
	got, err := NormalizeEntryPayload(EntryPayload{
		Title:   "  Morning pages  ",
		Content: "  wrote a bit before standup  ",
		Mood:    " motivated ",
		Tags:    []string{" win ", "idea"},
	})
	require.NoError(t, err)

	require.NotNil(t, got.Title)
	assert.Equal(t, "Morning pages", *got.Title)
	assert.Equal(t, "wrote a bit before standup", got.Content)
	require.NotNil(t, got.Mood)
	assert.Equal(t, types.MOOD_MOTIVATED, *got.Mood)
	assert.Equal(t, []string{types.TAG_WIN, types.TAG_IDEA}, got.Tags)
}

func TestNormalizeEntryPayload_BlankContentRejected(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := NormalizeEntryPayload(EntryPayload{Content: content})
		require.Error(t, err)

		cerr, ok := err.(*errors.CustomizedError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, cerr.GetCode())
	}
}

func TestNormalizeEntryPayload_BlankOptionalFieldsBecomeNil(t *testing.T) {
	got, err := NormalizeEntryPayload(EntryPayload{
		Title:   "   ",
		Content: "something happened",
		Mood:    "",
	})
	require.NoError(t, err)
	assert.Nil(t, got.Title)
	assert.Nil(t, got.Mood)
	assert.Empty(t, got.Tags)
	assert.NotNil(t, got.Tags)
}

func TestNormalizeEntryPayload_InvalidMood(t *testing.T) {
	_, err := NormalizeEntryPayload(EntryPayload{
		Content: "ok",
		Mood:    "ecstatic",
	})
	require.Error(t, err)
	cerr, ok := err.(*errors.CustomizedError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, cerr.GetCode())
}

func TestNormalizeEntryPayload_InvalidTag(t *testing.T) {
	_, err := NormalizeEntryPayload(EntryPayload{
		Content: "ok",
		Tags:    []string{types.TAG_WIN, "random"},
	})
	require.Error(t, err)
}

func TestNormalizeEntryPayload_TagsDeduped(t *testing.T) {
	got, err := NormalizeEntryPayload(EntryPayload{
		Content: "ok",
		Tags:    []string{"win", "win", " lesson", "win "},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{types.TAG_WIN, types.TAG_LESSON}, got.Tags)
}

func TestDraftCacheKey(t *testing.T) {
	assert.Equal(t, "journal:draft:u-123", DraftCacheKey("u-123"))
	assert.NotEqual(t, DraftCacheKey("a"), DraftCacheKey("b"))
}
