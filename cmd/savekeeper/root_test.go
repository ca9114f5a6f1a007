package savekeeper

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "savekeeper")
}

func TestSlotsList_EmptyProfile(t *testing.T) {
	out, err := runCommand(t, "slots", "list", "-p", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "No slots yet")
}

func TestSlotsCreateAndList(t *testing.T) {
	root := t.TempDir()

	out, err := runCommand(t, "slots", "create", "--name", "Main Story", "-p", root)
	require.NoError(t, err)
	assert.Contains(t, out, `Created slot "Main Story"`)

	out, err = runCommand(t, "slots", "list", "-p", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Main Story")
	assert.Contains(t, out, "no active save")
}

func TestSlotsDelete_RequiresConfirmation(t *testing.T) {
	root := t.TempDir()
	_, err := runCommand(t, "slots", "create", "--name", "Main", "-p", root)
	require.NoError(t, err)

	out, err := runCommand(t, "slots", "delete", "some-id", "-p", root)

	require.NoError(t, err)
	assert.Contains(t, out, "--yes")
}

func TestBypassStatus_UnconfiguredGamePath(t *testing.T) {
	// No --game flag and no config file: the command should fail with a
	// pointer at set-game rather than guess.
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	xdg.Reload()
	defer xdg.Reload()

	_, err := runCommand(t, "bypass", "status")

	assert.Error(t, err)
}

func TestRootWithoutArguments(t *testing.T) {
	_, err := runCommand(t)

	assert.Error(t, err)
}
