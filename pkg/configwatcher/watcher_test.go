package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"verdant_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initialConfig = `
cors:
  allowed_origins:
    - "http://a.example.com"
rate_limit:
  max_requests: 100
  window_minutes: 1
`

const updatedConfig = `
cors:
  allowed_origins:
    - "http://b.example.com"
rate_limit:
  max_requests: 7
  window_minutes: 1
`

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	t.Setenv("JWT_SECRET", "watch-secret")
	t.Setenv("CORS_ORIGINS", "")
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(initialConfig), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, dir, func(cfg *config.Config) { reloaded <- cfg })
	}()

	// 等待 watcher 注册目录
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte(updatedConfig), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, []string{"http://b.example.com"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, 7, cfg.RateLimit.MaxRequests)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchConfigIgnoresOtherFiles(t *testing.T) {
	t.Setenv("JWT_SECRET", "watch-secret")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(initialConfig), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloaded := make(chan *config.Config, 1)
	go WatchConfig(ctx, dir, func(cfg *config.Config) { reloaded <- cfg })

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	select {
	case <-reloaded:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(2 * time.Second):
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "missing"), func(*config.Config) {})
	assert.Error(t, err)
}
