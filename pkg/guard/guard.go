// Package guard gates destructive operations on the collaborator-supplied
// "game process running" signal. The gate is a precondition check at the
// call boundary, not a lock: the manager does not control the game
// process, it only reacts to the boolean it is handed.
package guard

import "github.com/arthur-debert/savekeeper/pkg/errors"

// Signal reports whether the external game process is currently running.
type Signal func() bool

// Guard wraps a Signal for use by operations.
type Guard struct {
	running Signal
}

// New creates a guard around the given signal. A nil signal never blocks.
func New(running Signal) *Guard {
	return &Guard{running: running}
}

// Never returns a guard that never blocks. Used where the hosting
// environment has no process signal to offer.
func Never() *Guard {
	return &Guard{}
}

// Check returns a BLOCKED error when the game is running, nil otherwise.
// The operation name is included for the caller to surface.
func (g *Guard) Check(operation string) error {
	if g == nil || g.running == nil || !g.running() {
		return nil
	}
	return errors.Newf(errors.ErrBlocked, "cannot %s while the game is running", operation).
		WithDetail("operation", operation)
}
