package testutil

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/arthur-debert/savekeeper/pkg/types"
)

// ErrInjected is the error FaultFS returns for matched writes.
var ErrInjected = errors.New("injected write failure")

// FaultFS wraps a types.FS and fails WriteFile calls whose path contains
// FailSubstring, after AllowWrites successful writes. Used to exercise
// rollback paths mid-operation.
type FaultFS struct {
	types.FS

	FailSubstring string
	AllowWrites   int

	writes int
}

// NewFaultFS wraps inner so that writes to paths containing substr fail.
func NewFaultFS(inner types.FS, substr string) *FaultFS {
	return &FaultFS{FS: inner, FailSubstring: substr}
}

func (f *FaultFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.FailSubstring != "" && strings.Contains(name, f.FailSubstring) {
		if f.writes >= f.AllowWrites {
			return ErrInjected
		}
	}
	f.writes++
	return f.FS.WriteFile(name, data, perm)
}
