package mods_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/mods"
	"github.com/arthur-debert/savekeeper/pkg/testutil"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

func installOneMod(t *testing.T, env *testutil.GameEnv, registry *mods.Registry) string {
	t.Helper()
	archivePath := env.WriteModArchive("Glasses", map[string][]byte{
		"Game/Content/Paks/~mods/glasses.pak": []byte("pak"),
	})
	require.NoError(t, registry.Install(archivePath))
	return filepath.Join(env.Root, filepath.FromSlash("Game/Content/Paks/~mods/glasses.pak"))
}

func TestToggle_RoundTrip(t *testing.T) {
	env := testutil.NewGameEnv(t)
	registry := mods.New(env.FS, env.Guard(), env.Root)
	trackedPath := installOneMod(t, env, registry)

	// Disable: canonical name gains the marker suffix
	require.NoError(t, registry.Toggle("Glasses"))
	assert.Equal(t, types.ModDisabled, registry.Mods()[0].Status)
	_, err := env.FS.Stat(trackedPath)
	assert.Error(t, err)
	_, err = env.FS.Stat(trackedPath + ".disabled")
	assert.NoError(t, err)

	// Enable: back to the original arrangement
	require.NoError(t, registry.Toggle("Glasses"))
	assert.Equal(t, types.ModEnabled, registry.Mods()[0].Status)
	_, err = env.FS.Stat(trackedPath)
	assert.NoError(t, err)
	_, err = env.FS.Stat(trackedPath + ".disabled")
	assert.Error(t, err)
}

func TestToggle_MissingFileIsSkipped(t *testing.T) {
	env := testutil.NewGameEnv(t)
	registry := mods.New(env.FS, env.Guard(), env.Root)
	trackedPath := installOneMod(t, env, registry)

	// Someone removed the file by hand; toggling still flips the status
	require.NoError(t, env.FS.Remove(trackedPath))
	require.NoError(t, registry.Toggle("Glasses"))
	assert.Equal(t, types.ModDisabled, registry.Mods()[0].Status)
}

func TestToggle_UnknownModIsNotFound(t *testing.T) {
	env := testutil.NewGameEnv(t)
	registry := mods.New(env.FS, env.Guard(), env.Root)

	err := registry.Toggle("Ghost")
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))
}

func TestToggle_BlockedWhileGameRunning(t *testing.T) {
	env := testutil.NewGameEnv(t)
	registry := mods.New(env.FS, env.Guard(), env.Root)
	installOneMod(t, env, registry)

	env.Running = true
	err := registry.Toggle("Glasses")
	assert.True(t, errors.IsCode(err, errors.ErrBlocked))
}

func TestDelete_RemovesBothNameVariants(t *testing.T) {
	env := testutil.NewGameEnv(t)
	registry := mods.New(env.FS, env.Guard(), env.Root)
	trackedPath := installOneMod(t, env, registry)

	// Leave the mod disabled so the file sits at the marker name
	require.NoError(t, registry.Toggle("Glasses"))
	require.NoError(t, registry.Delete("Glasses"))

	assert.Empty(t, registry.Mods())
	_, err := env.FS.Stat(trackedPath)
	assert.Error(t, err)
	_, err = env.FS.Stat(trackedPath + ".disabled")
	assert.Error(t, err)
}

func TestDelete_MissingFilesTolerated(t *testing.T) {
	env := testutil.NewGameEnv(t)
	registry := mods.New(env.FS, env.Guard(), env.Root)
	trackedPath := installOneMod(t, env, registry)

	require.NoError(t, env.FS.Remove(trackedPath))
	require.NoError(t, registry.Delete("Glasses"))
	assert.Empty(t, registry.Mods())
}

func TestFilePaths(t *testing.T) {
	enabled, disabled := mods.FilePaths("/game", "Game/Content/Paks/~mods/x.pak")
	assert.Equal(t, filepath.FromSlash("/game/Game/Content/Paks/~mods/x.pak"), enabled)
	assert.Equal(t, enabled+".disabled", disabled)
}
