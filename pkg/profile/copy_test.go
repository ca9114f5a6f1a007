package profile_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/guard"
	"github.com/arthur-debert/savekeeper/pkg/profile"
	"github.com/arthur-debert/savekeeper/pkg/testutil"
)

func newDestStore(t *testing.T, env *testutil.ProfileEnv) *profile.Store {
	t.Helper()
	destRoot := filepath.Join(t.TempDir(), "dest-profile")
	require.NoError(t, env.FS.MkdirAll(destRoot, 0755))
	return profile.New(env.FS, env.Clock, guard.Never(), destRoot)
}

func TestCopySlotTo_CopiesArchivesAndRecordVerbatim(t *testing.T) {
	env := testutil.NewProfileEnv(t)
	env.WriteLiveSave(map[string][]byte{"gamedata.bin": []byte("progress")})
	slotID, err := env.Store.InitializeFromGameSave("Traveler")
	require.NoError(t, err)
	backupID, err := env.Store.CreateBackup(slotID, "waypoint")
	require.NoError(t, err)

	dest := newDestStore(t, env)
	require.NoError(t, env.Store.CopySlotTo(dest, slotID))

	// Same id, identical record
	destProfile := dest.Load()
	require.Contains(t, destProfile.Slots, slotID)
	assert.Equal(t, env.Store.Load().Slot(slotID), destProfile.Slot(slotID))
	assert.Empty(t, destProfile.ActiveSlotID, "copying never activates the slot in the destination")

	// Full archive directory travelled along
	srcActive, err := env.FS.ReadFile(env.Store.Paths().ActiveSavePath(slotID))
	require.NoError(t, err)
	destActive, err := env.FS.ReadFile(dest.Paths().ActiveSavePath(slotID))
	require.NoError(t, err)
	assert.Equal(t, srcActive, destActive)
	_, err = env.FS.Stat(dest.Paths().BackupPath(slotID, backupID))
	assert.NoError(t, err)
}

func TestCopySlotTo_OverwritesExistingSlot(t *testing.T) {
	env := testutil.NewProfileEnv(t)
	env.WriteLiveSave(map[string][]byte{"gamedata.bin": []byte("fresh")})
	slotID, err := env.Store.InitializeFromGameSave("Mine")
	require.NoError(t, err)

	dest := newDestStore(t, env)
	require.NoError(t, env.Store.CopySlotTo(dest, slotID))

	// Diverge the source, then copy again: destination must match source
	require.NoError(t, env.Store.RenameSlot(slotID, "Renamed"))
	env.WriteLiveSave(map[string][]byte{"gamedata.bin": []byte("newer")})
	require.NoError(t, env.Store.SaveActiveGameState(slotID))

	require.NoError(t, env.Store.CopySlotTo(dest, slotID))
	assert.Equal(t, "Renamed", dest.Load().Slot(slotID).Name)
}

func TestCopySlotTo_DeclinedOverwriteLeavesDestinationUntouched(t *testing.T) {
	env := testutil.NewProfileEnv(t)
	env.WriteLiveSave(map[string][]byte{"gamedata.bin": []byte("v1")})
	slotID, err := env.Store.InitializeFromGameSave("Shared")
	require.NoError(t, err)

	dest := newDestStore(t, env)
	require.NoError(t, env.Store.CopySlotTo(dest, slotID))
	before, err := env.FS.ReadFile(dest.Paths().MetadataPath())
	require.NoError(t, err)
	beforeArchive, err := env.FS.ReadFile(dest.Paths().ActiveSavePath(slotID))
	require.NoError(t, err)

	// The caller checks for the collision and, on decline, never invokes
	// the copy. The destination stays byte-for-byte as it was.
	require.True(t, dest.HasSlot(slotID))

	after, err := env.FS.ReadFile(dest.Paths().MetadataPath())
	require.NoError(t, err)
	afterArchive, err := env.FS.ReadFile(dest.Paths().ActiveSavePath(slotID))
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, beforeArchive, afterArchive)
}

func TestCopySlotTo_UnknownSlotIsNotFound(t *testing.T) {
	env := testutil.NewProfileEnv(t)
	dest := newDestStore(t, env)

	err := env.Store.CopySlotTo(dest, "missing")
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))
}

func TestCopySlotTo_SameProfileIsConflict(t *testing.T) {
	env := testutil.NewProfileEnv(t)
	slotID, err := env.Store.CreateSlot("Loop")
	require.NoError(t, err)

	err = env.Store.CopySlotTo(env.Store, slotID)
	assert.True(t, errors.IsCode(err, errors.ErrConflict))
}
