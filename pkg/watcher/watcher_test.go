package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatched(t *testing.T, debounce time.Duration, files ...string) (*FileWatcher, chan string) {
	t.Helper()
	fw, err := NewFileWatcher(debounce)
	require.NoError(t, err)
	t.Cleanup(func() { fw.Close() })

	changed := make(chan string, 16)
	require.NoError(t, fw.Watch(files, func(path string) { changed <- path }))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	fw.Start(ctx)
	return fw, changed
}

func TestWatchReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))

	_, changed := newWatched(t, 20*time.Millisecond, path)
	require.NoError(t, os.WriteFile(path, []byte("v 1 1 1\n"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	select {
	case got := <-changed:
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchReportsRenameOver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))

	_, changed := newWatched(t, 20*time.Millisecond, path)

	tmp := filepath.Join(dir, "model.obj.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("v 2 2 2\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case got := <-changed:
		assert.Equal(t, "model.obj", filepath.Base(got))
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))

	_, changed := newWatched(t, 10*time.Millisecond, path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.obj"), []byte("v 0 0 0\n"), 0o644))

	select {
	case got := <-changed:
		t.Fatalf("unexpected change for %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchDebounces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.obj")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, changed := newWatched(t, 300*time.Millisecond, path)
	for i := range 5 {
		require.NoError(t, os.WriteFile(path, []byte{byte('0' + i)}, 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	select {
	case <-changed:
		t.Fatal("burst of writes was reported more than once")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	err = fw.Watch([]string{filepath.Join(t.TempDir(), "missing", "model.obj")}, func(string) {})
	assert.Error(t, err)
}

func TestRemoveAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.obj")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, changed := newWatched(t, 10*time.Millisecond, path)
	require.NoError(t, fw.RemoveAll())
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))

	select {
	case got := <-changed:
		t.Fatalf("unexpected change for %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}
