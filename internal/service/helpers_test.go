package service

import (
	"context"
	"sync"
	"testing"

	"verdant_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

type aiCall struct {
	systemPrompt string
	userPrompt   string
	image        *ImageInput
}

// fakeAI replays canned replies in order and records every call.
type fakeAI struct {
	mu      sync.Mutex
	replies []string
	err     error
	calls   []aiCall
}

func (f *fakeAI) CompleteText(ctx context.Context, systemPrompt, userPrompt string, image *ImageInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, aiCall{systemPrompt: systemPrompt, userPrompt: userPrompt, image: image})
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", nil
	}
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}
