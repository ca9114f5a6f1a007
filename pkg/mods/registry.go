// Package mods tracks installed modification packages: a manifest of
// exactly which files each mod wrote into the game tree, reversible
// per-file enable/disable, and rollback-safe installation.
package mods

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/guard"
	"github.com/arthur-debert/savekeeper/pkg/logging"
	"github.com/arthur-debert/savekeeper/pkg/paths"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// registryLocks serializes manifest mutations per game root.
var (
	registryLocksMu sync.Mutex
	registryLocks   = make(map[string]*sync.Mutex)
)

func lockFor(root string) *sync.Mutex {
	registryLocksMu.Lock()
	defer registryLocksMu.Unlock()
	key := filepath.Clean(root)
	mu, ok := registryLocks[key]
	if !ok {
		mu = &sync.Mutex{}
		registryLocks[key] = mu
	}
	return mu
}

// Registry mediates all access to one installation's mod manifest and
// the mod files in its game tree.
type Registry struct {
	fs     types.FS
	guard  *guard.Guard
	paths  paths.GamePaths
	logger zerolog.Logger
}

// New creates a registry for the installation rooted at gameRoot.
func New(fsys types.FS, g *guard.Guard, gameRoot string) *Registry {
	return &Registry{
		fs:     fsys,
		guard:  g,
		paths:  paths.NewGamePaths(gameRoot),
		logger: logging.GetLogger("mods"),
	}
}

// GameRoot returns the installation root this registry manages.
func (r *Registry) GameRoot() string { return r.paths.Root() }

// Load reads the manifest. Missing or unparsable manifests degrade to an
// empty list.
func (r *Registry) Load() []*types.Mod {
	data, err := r.fs.ReadFile(r.paths.ManifestPath())
	if err != nil {
		return nil
	}
	var mods []*types.Mod
	if err := json.Unmarshal(data, &mods); err != nil {
		r.logger.Warn().Err(err).Str("path", r.paths.ManifestPath()).
			Msg("Mod manifest unreadable, starting from empty list")
		return nil
	}
	return mods
}

// save persists the manifest. Callers must only invoke it after the
// corresponding file operations have succeeded.
func (r *Registry) save(mods []*types.Mod) error {
	if err := r.fs.MkdirAll(r.paths.ManagerDir(), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to create %s", r.paths.ManagerDir())
	}
	if mods == nil {
		mods = []*types.Mod{}
	}
	data, err := json.MarshalIndent(mods, "", "    ")
	if err != nil {
		return errors.Wrap(err, errors.ErrMetadataWrite, "failed to encode mod manifest")
	}
	if err := r.fs.WriteFile(r.paths.ManifestPath(), data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrMetadataWrite, "failed to write %s", r.paths.ManifestPath())
	}
	return nil
}

// mutate runs fn under the registry lock and persists the manifest when
// fn succeeds. fn returns the new manifest.
func (r *Registry) mutate(fn func(mods []*types.Mod) ([]*types.Mod, error)) error {
	mu := lockFor(r.paths.Root())
	mu.Lock()
	defer mu.Unlock()

	mods, err := fn(r.Load())
	if err != nil {
		return err
	}
	return r.save(mods)
}

// Mods returns the installed mods sorted case-insensitively by name.
func (r *Registry) Mods() []*types.Mod {
	mods := r.Load()
	sort.Slice(mods, func(i, j int) bool {
		return strings.ToLower(mods[i].Name) < strings.ToLower(mods[j].Name)
	})
	return mods
}

func findMod(mods []*types.Mod, name string) (int, *types.Mod) {
	for i, m := range mods {
		if m.Name == name {
			return i, m
		}
	}
	return -1, nil
}
