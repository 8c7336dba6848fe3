package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	manager, runtime, _ := testManager(t)
	require.NoError(t, manager.LoadThemes())

	watcher, err := NewWatcher(manager)
	require.NoError(t, err)
	require.NoError(t, watcher.Start())
	defer watcher.Stop()

	path := filepath.Join(manager.ThemesDir(), "fresh.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dark": {"text": "#abc"}}`), 0o644))

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := runtime.AvailableThemes()["fresh_dark"]; ok {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("fresh theme was not picked up, registered: %v", runtime.AvailableThemes())
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	manager, _, _ := testManager(t)
	require.NoError(t, manager.EnsureDefaultTheme())

	watcher, err := NewWatcher(manager)
	require.NoError(t, err)
	require.NoError(t, watcher.Start())

	watcher.Stop()
	watcher.Stop()

	// A stopped watcher is single-use.
	assert.Error(t, watcher.Start())
}
