// Package testutil provides shared helpers for savekeeper tests:
// isolated profile and game-tree environments, live-save fixtures, mod
// archive fabrication, and a fault-injecting filesystem.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/savekeeper/pkg/archive"
	"github.com/arthur-debert/savekeeper/pkg/filesystem"
	"github.com/arthur-debert/savekeeper/pkg/guard"
	"github.com/arthur-debert/savekeeper/pkg/paths"
	"github.com/arthur-debert/savekeeper/pkg/profile"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// FixedTime is the instant FixedClock environments report.
var FixedTime = time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

// ProfileEnv is an isolated on-disk profile for one test.
type ProfileEnv struct {
	Root    string
	FS      types.FS
	Clock   types.Clock
	Running bool
	Store   *profile.Store

	t *testing.T
}

// NewProfileEnv creates a temp-dir profile with a pinned clock and a
// guard wired to the env's Running flag.
func NewProfileEnv(t *testing.T) *ProfileEnv {
	t.Helper()

	env := &ProfileEnv{
		Root:  filepath.Join(t.TempDir(), "profile"),
		FS:    filesystem.NewOS(),
		Clock: types.FixedClock(FixedTime),
		t:     t,
	}
	require.NoError(t, env.FS.MkdirAll(env.Root, 0755))
	env.Store = profile.New(env.FS, env.Clock, guard.New(func() bool { return env.Running }), env.Root)
	return env
}

// WriteLiveSave puts a live save-file set into the profile root.
func (e *ProfileEnv) WriteLiveSave(files map[string][]byte) {
	e.t.Helper()
	for name, data := range files {
		require.NoError(e.t, e.FS.WriteFile(filepath.Join(e.Root, name), data, 0644))
	}
}

// LiveFiles returns the current live save set as name -> content.
func (e *ProfileEnv) LiveFiles() map[string][]byte {
	e.t.Helper()
	out := make(map[string][]byte)
	entries, err := e.FS.ReadDir(e.Root)
	require.NoError(e.t, err)
	for _, entry := range entries {
		if entry.IsDir() || !paths.IsLiveSaveFile(entry.Name()) {
			continue
		}
		data, err := e.FS.ReadFile(filepath.Join(e.Root, entry.Name()))
		require.NoError(e.t, err)
		out[entry.Name()] = data
	}
	return out
}

// GameEnv is an isolated game installation tree for one test.
type GameEnv struct {
	Root    string
	FS      types.FS
	Running bool

	t *testing.T
}

// NewGameEnv creates a structurally valid game root in a temp dir.
func NewGameEnv(t *testing.T) *GameEnv {
	t.Helper()

	env := &GameEnv{
		Root: filepath.Join(t.TempDir(), paths.GameDirName),
		FS:   filesystem.NewOS(),
		t:    t,
	}
	gp := paths.NewGamePaths(env.Root)
	require.NoError(t, env.FS.MkdirAll(filepath.Dir(gp.ShippingExePath()), 0755))
	require.NoError(t, env.FS.WriteFile(gp.LauncherPath(), []byte("launcher"), 0755))
	require.NoError(t, env.FS.WriteFile(gp.GameExePath(), []byte("game"), 0755))
	require.NoError(t, env.FS.WriteFile(gp.ShippingExePath(), []byte("shipping"), 0755))
	return env
}

// Guard returns a guard wired to the env's Running flag.
func (e *GameEnv) Guard() *guard.Guard {
	return guard.New(func() bool { return e.Running })
}

// WriteModArchive fabricates a zip mod package at a path outside the
// game tree and returns its location. The mod's name derives from base.
func (e *GameEnv) WriteModArchive(base string, files map[string][]byte) string {
	e.t.Helper()
	dest := filepath.Join(e.t.TempDir(), base+".zip")
	require.NoError(e.t, archive.WriteFiles(e.FS, dest, files))
	return dest
}
