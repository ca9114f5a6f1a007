package profile

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/guard"
	"github.com/arthur-debert/savekeeper/pkg/logging"
	"github.com/arthur-debert/savekeeper/pkg/paths"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// profileLocks serializes {load -> mutate -> persist} sequences per
// profile root. The model is single-actor, but the hosting environment
// polls in the background, so operations stay correct under overlap.
var (
	profileLocksMu sync.Mutex
	profileLocks   = make(map[string]*sync.Mutex)
)

func lockFor(root string) *sync.Mutex {
	profileLocksMu.Lock()
	defer profileLocksMu.Unlock()
	key := filepath.Clean(root)
	mu, ok := profileLocks[key]
	if !ok {
		mu = &sync.Mutex{}
		profileLocks[key] = mu
	}
	return mu
}

// Store mediates all access to one profile's metadata and archives.
type Store struct {
	fs     types.FS
	clock  types.Clock
	guard  *guard.Guard
	paths  paths.ProfilePaths
	logger zerolog.Logger
}

// New creates a store for the profile rooted at root. The guard gates
// destructive operations; pass guard.Never() when no process signal is
// available.
func New(fsys types.FS, clock types.Clock, g *guard.Guard, root string) *Store {
	return &Store{
		fs:     fsys,
		clock:  clock,
		guard:  g,
		paths:  paths.NewProfilePaths(root),
		logger: logging.GetLogger("profile"),
	}
}

// Root returns the profile root directory.
func (s *Store) Root() string { return s.paths.Root() }

// Paths exposes the profile's on-disk layout.
func (s *Store) Paths() paths.ProfilePaths { return s.paths }

// Load reads the profile's metadata document. A missing or unparsable
// document degrades to the empty default rather than failing: a usable
// profile beats a hard stop.
func (s *Store) Load() *types.Profile {
	data, err := s.fs.ReadFile(s.paths.MetadataPath())
	if err != nil {
		return types.NewProfile()
	}
	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn().Err(err).Str("path", s.paths.MetadataPath()).
			Msg("Metadata document unreadable, starting from empty default")
		return types.NewProfile()
	}
	if p.Slots == nil {
		p.Slots = make(map[string]*types.Slot)
	}
	for _, slot := range p.Slots {
		if slot.Backups == nil {
			slot.Backups = make(map[string]*types.Backup)
		}
	}
	return &p
}

// save persists the metadata document. Callers must only invoke it after
// the corresponding file operations have succeeded.
func (s *Store) save(p *types.Profile) error {
	if err := s.fs.MkdirAll(s.paths.ManagerDir(), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to create %s", s.paths.ManagerDir())
	}
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return errors.Wrap(err, errors.ErrMetadataWrite, "failed to encode metadata")
	}
	if err := s.fs.WriteFile(s.paths.MetadataPath(), data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrMetadataWrite, "failed to write %s", s.paths.MetadataPath())
	}
	return nil
}

// mutate runs fn under the profile lock and persists the document when
// fn succeeds. fn performs its file work before touching the document.
func (s *Store) mutate(fn func(p *types.Profile) error) error {
	mu := lockFor(s.paths.Root())
	mu.Lock()
	defer mu.Unlock()

	p := s.Load()
	if err := fn(p); err != nil {
		return err
	}
	return s.save(p)
}

// HasLiveSave reports whether the profile root currently holds a live
// save-file set.
func (s *Store) HasLiveSave() bool {
	entries, err := s.fs.ReadDir(s.paths.Root())
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && paths.IsLiveSaveFile(entry.Name()) {
			return true
		}
	}
	return false
}

// clearLiveFiles removes every live save file from the profile root.
func (s *Store) clearLiveFiles() error {
	entries, err := s.fs.ReadDir(s.paths.Root())
	if err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to list %s", s.paths.Root())
	}
	for _, entry := range entries {
		if entry.IsDir() || !paths.IsLiveSaveFile(entry.Name()) {
			continue
		}
		if err := s.fs.Remove(filepath.Join(s.paths.Root(), entry.Name())); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to remove %s", entry.Name())
		}
	}
	return nil
}

// slotOrNotFound resolves a slot id against the document.
func slotOrNotFound(p *types.Profile, slotID string) (*types.Slot, error) {
	slot := p.Slot(slotID)
	if slot == nil {
		return nil, errors.Newf(errors.ErrNotFound, "slot %s does not exist", slotID)
	}
	return slot, nil
}
