package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iphase-tech/iphase-site/internal/content"
)

func writeContent(t *testing.T, path string, mutate func(*content.Site)) {
	t.Helper()
	s, err := content.Default()
	require.NoError(t, err)
	if mutate != nil {
		mutate(s)
	}
	data, err := yaml.Marshal(s)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestWatcherReloadsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	writeContent(t, path, nil)

	store, err := content.NewStore(path)
	require.NoError(t, err)

	w, err := NewWatcher(path, store.Reload, zap.NewNop())
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	writeContent(t, path, func(s *content.Site) { s.Brand.Name = "iPhase Labs" })
	require.Eventually(t, func() bool { return store.Get().Brand.Name == "iPhase Labs" },
		5*time.Second, 10*time.Millisecond)

	// Broken content is ignored; the last good version stays.
	require.NoError(t, os.WriteFile(path, []byte("brand: [oops"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "iPhase Labs", store.Get().Brand.Name)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yml")
	writeContent(t, path, nil)

	reloads := make(chan struct{}, 10)
	w, err := NewWatcher(path, func() error { reloads <- struct{}{}; return nil }, zap.NewNop())
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	select {
	case <-reloads:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(100 * time.Millisecond):
	}
}
