package types

import (
	"io/fs"
	"time"
)

// FS is the filesystem interface required for savekeeper operations.
// The OS implementation is the default; tests swap in a memory-backed one.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}

// Clock supplies timestamps. Operations never call time.Now directly so
// tests can pin time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns a Clock backed by the system time.
func RealClock() Clock { return realClock{} }

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
