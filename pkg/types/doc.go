// Package types defines the core data model shared across savekeeper:
// profiles, slots, backups, mods, and the interfaces (filesystem, clock)
// that operations are written against.
package types
