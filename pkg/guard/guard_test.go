package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/guard"
)

func TestCheck_GameRunning(t *testing.T) {
	g := guard.New(func() bool { return true })

	err := g.Check("delete slot")

	assert.True(t, errors.IsCode(err, errors.ErrBlocked))
	assert.Contains(t, err.Error(), "delete slot")
}

func TestCheck_GameNotRunning(t *testing.T) {
	g := guard.New(func() bool { return false })

	assert.NoError(t, g.Check("delete slot"))
}

func TestCheck_Never(t *testing.T) {
	assert.NoError(t, guard.Never().Check("anything"))
}

func TestCheck_NilSignal(t *testing.T) {
	assert.NoError(t, guard.New(nil).Check("anything"))
}

func TestCheck_SignalReconsulted(t *testing.T) {
	// The signal is read on every check, not cached.
	running := true
	g := guard.New(func() bool { return running })

	assert.Error(t, g.Check("install mod"))
	running = false
	assert.NoError(t, g.Check("install mod"))
}
