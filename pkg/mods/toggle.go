package mods

import (
	"path/filepath"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/paths"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// FilePaths returns both possible on-disk locations of one tracked mod
// file: its canonical path and its disabled-marker path. State lives in
// the manifest's status field; this function is how that state maps onto
// file names, never the other way around.
func FilePaths(gameRoot, relPath string) (enabled, disabled string) {
	enabled = filepath.Join(gameRoot, filepath.FromSlash(relPath))
	return enabled, enabled + paths.DisabledSuffix
}

// Toggle flips a mod between enabled and disabled by renaming every
// tracked file to or from its disabled-marker name. A tracked file
// missing at the expected source name is skipped rather than failing,
// which tolerates prior partial state; toggling twice restores both the
// file arrangement and the status.
func (r *Registry) Toggle(name string) error {
	if err := r.guard.Check("toggle a mod"); err != nil {
		return err
	}
	return r.mutate(func(mods []*types.Mod) ([]*types.Mod, error) {
		_, mod := findMod(mods, name)
		if mod == nil {
			return nil, errors.Newf(errors.ErrNotFound, "no mod named %q is installed", name)
		}

		disabling := mod.Status == types.ModEnabled
		for _, rel := range mod.Files {
			enabledPath, disabledPath := FilePaths(r.paths.Root(), rel)
			src, dst := enabledPath, disabledPath
			if !disabling {
				src, dst = disabledPath, enabledPath
			}
			if _, err := r.fs.Stat(src); err != nil {
				continue
			}
			if err := r.fs.Rename(src, dst); err != nil {
				return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to rename %s", rel)
			}
		}

		if disabling {
			mod.Status = types.ModDisabled
		} else {
			mod.Status = types.ModEnabled
		}
		r.logger.Info().Str("mod", name).Str("status", string(mod.Status)).Msg("Mod toggled")
		return mods, nil
	})
}

// Delete removes a mod: every tracked file at both its canonical and
// disabled-marker path (missing files tolerated) and its manifest entry.
func (r *Registry) Delete(name string) error {
	if err := r.guard.Check("delete a mod"); err != nil {
		return err
	}
	return r.mutate(func(mods []*types.Mod) ([]*types.Mod, error) {
		i, mod := findMod(mods, name)
		if mod == nil {
			return nil, errors.Newf(errors.ErrNotFound, "no mod named %q is installed", name)
		}

		for _, rel := range mod.Files {
			enabledPath, disabledPath := FilePaths(r.paths.Root(), rel)
			for _, p := range []string{enabledPath, disabledPath} {
				if _, err := r.fs.Stat(p); err == nil {
					_ = r.fs.Remove(p)
				}
			}
		}

		r.logger.Info().Str("mod", name).Msg("Mod deleted")
		return append(mods[:i], mods[i+1:]...), nil
	})
}
