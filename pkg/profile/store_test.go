package profile_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/savekeeper/pkg/testutil"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

func TestLoad_MissingMetadataIsEmptyDefault(t *testing.T) {
	env := testutil.NewProfileEnv(t)

	p := env.Store.Load()
	assert.Empty(t, p.ActiveSlotID)
	assert.Empty(t, p.Slots)
}

func TestLoad_CorruptMetadataDegradesToDefault(t *testing.T) {
	env := testutil.NewProfileEnv(t)

	metaPath := env.Store.Paths().MetadataPath()
	require.NoError(t, env.FS.MkdirAll(filepath.Dir(metaPath), 0755))
	require.NoError(t, env.FS.WriteFile(metaPath, []byte("{not json"), 0644))

	p := env.Store.Load()
	assert.Empty(t, p.ActiveSlotID)
	assert.Empty(t, p.Slots)

	// A corrupt document must not poison subsequent operations
	_, err := env.Store.CreateSlot("Recovered")
	require.NoError(t, err)
	assert.Len(t, env.Store.Load().Slots, 1)
}

func TestMetadata_RoundTrip(t *testing.T) {
	env := testutil.NewProfileEnv(t)

	env.WriteLiveSave(map[string][]byte{"gamedata.bin": []byte("save")})
	slotID, err := env.Store.InitializeFromGameSave("Golden Angler")
	require.NoError(t, err)
	backupID, err := env.Store.CreateBackup(slotID, "Before the volcano")
	require.NoError(t, err)

	first := env.Store.Load()
	second := env.Store.Load()
	assert.Equal(t, first, second)

	// The persisted document uses the stable wire shape
	data, err := env.FS.ReadFile(env.Store.Paths().MetadataPath())
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, slotID, raw["active_slot_uuid"])
	slots := raw["slots"].(map[string]interface{})
	slot := slots[slotID].(map[string]interface{})
	assert.Equal(t, "Golden Angler", slot["name"])
	assert.Contains(t, slot["backups"].(map[string]interface{}), backupID)
}

// activeSlotInvariant checks that the active slot id, when set, keys an
// existing slot.
func activeSlotInvariant(t *testing.T, p *types.Profile) {
	t.Helper()
	if p.ActiveSlotID != "" {
		assert.Contains(t, p.Slots, p.ActiveSlotID)
	}
}

func TestActiveSlotInvariant_AfterOperationSequence(t *testing.T) {
	env := testutil.NewProfileEnv(t)
	store := env.Store

	env.WriteLiveSave(map[string][]byte{"gamedata.bin": []byte("one")})
	first, err := store.InitializeFromGameSave("First")
	require.NoError(t, err)
	activeSlotInvariant(t, store.Load())

	second, err := store.CreateSlot("Second")
	require.NoError(t, err)
	activeSlotInvariant(t, store.Load())

	_, err = store.LoadSlot(second)
	require.NoError(t, err)
	activeSlotInvariant(t, store.Load())

	require.NoError(t, store.DeleteSlot(second))
	p := store.Load()
	activeSlotInvariant(t, p)
	assert.Empty(t, p.ActiveSlotID)

	_, err = store.LoadSlot(first)
	require.NoError(t, err)
	require.NoError(t, store.DeleteSlot(first))
	p = store.Load()
	activeSlotInvariant(t, p)
	assert.Empty(t, p.Slots)
}
