package archive_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/savekeeper/pkg/archive"
	"github.com/arthur-debert/savekeeper/pkg/filesystem"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

func writeFiles(t *testing.T, fs types.FS, dir string, files map[string][]byte) {
	t.Helper()
	for name, data := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0755))
		require.NoError(t, fs.WriteFile(filepath.Join(dir, name), data, 0644))
	}
}

func TestSnapshotExtract_RoundTrip(t *testing.T) {
	fs := filesystem.NewOS()
	src := t.TempDir()
	writeFiles(t, fs, src, map[string][]byte{
		"gamedata.bin": []byte("live"),
		"other.txt":    []byte("ignored"),
	})

	dest := filepath.Join(t.TempDir(), "snap", "save.zip")
	include := func(name string) bool { return name == "gamedata.bin" }
	require.NoError(t, archive.Snapshot(fs, src, include, dest))

	out := t.TempDir()
	require.NoError(t, archive.Extract(fs, dest, out))

	data, err := fs.ReadFile(filepath.Join(out, "gamedata.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte("live"), data)
	_, err = fs.Stat(filepath.Join(out, "other.txt"))
	assert.Error(t, err, "excluded files must not be archived")
}

func TestSnapshot_OverwritesPreviousArchive(t *testing.T) {
	fs := filesystem.NewOS()
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "save.zip")
	all := func(string) bool { return true }

	writeFiles(t, fs, src, map[string][]byte{"gamedata.bin": []byte("v1")})
	require.NoError(t, archive.Snapshot(fs, src, all, dest))
	writeFiles(t, fs, src, map[string][]byte{"gamedata.bin": []byte("v2")})
	require.NoError(t, archive.Snapshot(fs, src, all, dest))

	out := t.TempDir()
	require.NoError(t, archive.Extract(fs, dest, out))
	data, err := fs.ReadFile(filepath.Join(out, "gamedata.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestOpen_NormalizesEntryPaths(t *testing.T) {
	fs := filesystem.NewOS()
	dest := filepath.Join(t.TempDir(), "mod.zip")
	require.NoError(t, archive.WriteFiles(fs, dest, map[string][]byte{
		`Game\Content\Paks\~mods\win.pak`: []byte("backslashes"),
		"./relative.pak":                  []byte("dot prefix"),
		"../escape.pak":                   []byte("outside"),
		"/absolute.pak":                   []byte("rooted"),
	}))

	reader, err := archive.Open(fs, dest)
	require.NoError(t, err)

	var got []string
	for _, f := range reader.Files() {
		got = append(got, f.Path)
	}
	assert.ElementsMatch(t, []string{
		"Game/Content/Paks/~mods/win.pak",
		"relative.pak",
	}, got, "escaping and absolute entries are dropped, separators normalized")
}

func TestOpen_MissingArchive(t *testing.T) {
	fs := filesystem.NewOS()
	_, err := archive.Open(fs, filepath.Join(t.TempDir(), "nope.zip"))
	assert.Error(t, err)
}

func TestOpen_CorruptArchive(t *testing.T) {
	fs := filesystem.NewOS()
	dest := filepath.Join(t.TempDir(), "bad.zip")
	require.NoError(t, fs.WriteFile(dest, []byte("this is not a zip"), 0644))

	_, err := archive.Open(fs, dest)
	assert.Error(t, err)
}
