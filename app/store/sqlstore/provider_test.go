package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/saas-journey/journey/pkg/testutils"
	"github.com/saas-journey/journey/pkg/types"
	"github.com/saas-journey/journey/pkg/utils"
)

type testPGConfig struct {
	DSN string
}

func (m testPGConfig) FormatDSN() string {
	return m.DSN
}

func TestJournalEntryCRUD(t *testing.T) {
	testutils.LoadEnv()
	dsn := testutils.GetEnvOrDefault("JOURNEY_TEST_POSTGRESQL_DSN", "")
	if dsn == "" {
		t.Skip("JOURNEY_TEST_POSTGRESQL_DSN not set")
	}

	utils.SetupIDWorker(0)
	provider := MustSetup(testPGConfig{DSN: dsn})()
	if err := provider.Install(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()

	userID := "test-" + utils.GenRandomID()[:8]
	title := "integration test entry"
	mood := types.MOOD_MOTIVATED

	entry := types.JournalEntry{
		ID:        utils.GenUniqIDStr(),
		UserID:    userID,
		Title:     &title,
		Content:   "store roundtrip",
		Mood:      &mood,
		Tags:      []string{types.TAG_WIN},
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}
	if err := provider.JournalEntryStore().Create(ctx, entry); err != nil {
		t.Fatal(err)
	}

	got, err := provider.JournalEntryStore().Get(ctx, userID, entry.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != entry.Content || got.Title == nil || *got.Title != title {
		t.Fatalf("unexpected entry: %+v", got)
	}

	// 他人视角查不到
	if _, err = provider.JournalEntryStore().Get(ctx, "someone-else", entry.ID); err == nil {
		t.Fatal("expected no rows for foreign user")
	}

	if err = provider.JournalEntryStore().Delete(ctx, userID, entry.ID); err != nil {
		t.Fatal(err)
	}
}
