package stylesheet

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	path := writeStylesheet(t, ".a { }")

	var calls atomic.Int32
	var changed atomic.Value
	watcher, err := NewWatcher(func(p string) {
		changed.Store(p)
		calls.Add(1)
	})
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, watcher.Watch(path))
	assert.Equal(t, filepath.Clean(path), watcher.Path())

	require.NoError(t, os.WriteFile(path, []byte(".a { } .b { }"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() > 0 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, filepath.Clean(path), changed.Load())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	path := writeStylesheet(t, ".a { }")

	var calls atomic.Int32
	watcher, err := NewWatcher(func(string) { calls.Add(1) })
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, watcher.Watch(path))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.css"), []byte(".x { }"), 0o644))

	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_EmptyPathStopsWatching(t *testing.T) {
	path := writeStylesheet(t, ".a { }")

	var calls atomic.Int32
	watcher, err := NewWatcher(func(string) { calls.Add(1) })
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, watcher.Watch(path))
	require.NoError(t, watcher.Watch(""))
	assert.Equal(t, "", watcher.Path())

	require.NoError(t, os.WriteFile(path, []byte(".b { }"), 0o644))

	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_CloseTwice(t *testing.T) {
	watcher, err := NewWatcher(func(string) {})
	require.NoError(t, err)

	require.NoError(t, watcher.Close())
	assert.NoError(t, watcher.Close())
}
