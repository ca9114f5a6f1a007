package mods

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/savekeeper/pkg/archive"
	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/paths"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// ModNameFromArchive derives a mod's identity from its source archive
// path: the base name without extension. Identity is nothing more than
// this name; two differently named archives of the same content install
// as two mods, and an exact name match is rejected as a duplicate.
func ModNameFromArchive(archivePath string) string {
	base := filepath.Base(archivePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Install extracts a mod archive into the game tree, recording the exact
// set of files it writes. Entries targeting the user mods overlay get
// that directory auto-created. On any failure every file already written
// is removed again (best-effort) and the mod is not registered.
func (r *Registry) Install(archivePath string) error {
	if err := r.guard.Check("install a mod"); err != nil {
		return err
	}
	name := ModNameFromArchive(archivePath)

	return r.mutate(func(mods []*types.Mod) ([]*types.Mod, error) {
		if _, existing := findMod(mods, name); existing != nil {
			return nil, errors.Newf(errors.ErrConflict, "a mod named %q is already installed", name)
		}

		reader, err := archive.Open(r.fs, archivePath)
		if err != nil {
			return nil, err
		}

		var written []string
		rollback := func() {
			for _, rel := range written {
				_ = r.fs.Remove(filepath.Join(r.paths.Root(), filepath.FromSlash(rel)))
			}
		}

		for _, f := range reader.Files() {
			if paths.IsUserModsPath(f.Path) {
				if err := r.fs.MkdirAll(r.paths.UserModsDir(), 0755); err != nil {
					rollback()
					return nil, errors.Wrap(err, errors.ErrIOFailure, "failed to create user mods directory")
				}
			}
			data, err := f.Content()
			if err != nil {
				rollback()
				return nil, err
			}
			dest := filepath.Join(r.paths.Root(), filepath.FromSlash(f.Path))
			if err := r.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				rollback()
				return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to create %s", filepath.Dir(dest))
			}
			if err := r.fs.WriteFile(dest, data, 0644); err != nil {
				rollback()
				return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s", f.Path)
			}
			written = append(written, f.Path)
		}

		r.logger.Info().Str("mod", name).Int("files", len(written)).Msg("Mod installed")
		return append(mods, &types.Mod{
			Name:   name,
			Status: types.ModEnabled,
			Files:  written,
		}), nil
	})
}

// PreInstallCheck dry-runs an install and reports every destination path
// whose parent directory does not already exist, excluding entries bound
// for the auto-created user mods overlay. A non-empty report usually
// means the archive was packaged against the wrong root; the caller
// surfaces it before committing.
func (r *Registry) PreInstallCheck(archivePath string) ([]string, error) {
	reader, err := archive.Open(r.fs, archivePath)
	if err != nil {
		return nil, err
	}

	var problems []string
	for _, f := range reader.Files() {
		if paths.IsUserModsPath(f.Path) {
			continue
		}
		destDir := filepath.Join(r.paths.Root(), filepath.FromSlash(path.Dir(f.Path)))
		info, err := r.fs.Stat(destDir)
		if err != nil || !info.IsDir() {
			problems = append(problems, f.Path)
		}
	}
	return problems, nil
}
