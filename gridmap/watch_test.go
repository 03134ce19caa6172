package gridmap_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/gridmap"
)

// waitFor returns the first event for want, failing on any other layout file.
func waitFor(t *testing.T, w *gridmap.Watcher, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		select {
		case name := <-w.Events:
			return name == want
		case err := <-w.Errors:
			t.Errorf("watcher error: %v", err)
			return false
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_ReloadsChangedLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - \"S.G\"\n"), 0o644))

	l, err := gridmap.Load(path)
	require.NoError(t, err)
	g, err := l.Build()
	require.NoError(t, err)
	start, goal, ok := l.Endpoints()
	require.True(t, ok)

	res, err := astar.FindPath(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)

	w, err := gridmap.NewWatcherDebounce(0, dir)
	require.NoError(t, err)
	defer w.Close()

	// non-layout files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - \"S#G\"\n"), 0o644))
	waitFor(t, w, path)

	_, err = gridmap.Reload(path, g)
	require.NoError(t, err)
	res, err = astar.FindPath(g, start, goal)
	require.NoError(t, err)
	assert.False(t, res.Found, "reloaded wall blocks the corridor")
}

func TestWatcher_DebounceReportsLastSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gate.yaml")
	g, err := grid.New(3, 1)
	require.NoError(t, err)

	w, err := gridmap.NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - \"#..\"\n"), 0o644))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - \"..#\"\n"), 0o644))
	waitFor(t, w, path)

	_, err = gridmap.Reload(path, g)
	require.NoError(t, err)
	first, _ := g.Passable(grid.Point{X: 0, Y: 0})
	last, _ := g.Passable(grid.Point{X: 2, Y: 0})
	assert.True(t, first, "first save was superseded")
	assert.False(t, last, "grid follows the last save")
}

func TestReload_LeavesGridOnError(t *testing.T) {
	dir := t.TempDir()
	g, err := grid.New(3, 1)
	require.NoError(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows:\n  - \"#?#\"\n"), 0o644))
	_, err = gridmap.Reload(bad, g)
	assert.ErrorIs(t, err, gridmap.ErrBadLayout)

	wide := filepath.Join(dir, "wide.yaml")
	require.NoError(t, os.WriteFile(wide, []byte("rows:\n  - \"####\"\n"), 0o644))
	_, err = gridmap.Reload(wide, g)
	assert.ErrorIs(t, err, gridmap.ErrLayoutMismatch)

	ok, _ := g.Passable(grid.Point{X: 0, Y: 0})
	assert.True(t, ok)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := gridmap.NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, open := <-w.Events
	assert.False(t, open)

	_, err = gridmap.NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
