// Package launcher manages the anti-cheat bypass: a reversible swap
// that parks the game's anti-cheat launcher and puts a copy of the game
// executable in its place, so the game starts without the anti-cheat
// wrapper.
package launcher

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/guard"
	"github.com/arthur-debert/savekeeper/pkg/logging"
	"github.com/arthur-debert/savekeeper/pkg/paths"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// Bypass operates on one game installation's launcher executables.
type Bypass struct {
	fs     types.FS
	guard  *guard.Guard
	paths  paths.GamePaths
	logger zerolog.Logger
}

// New creates a bypass handle for the installation rooted at gameRoot.
func New(fsys types.FS, g *guard.Guard, gameRoot string) *Bypass {
	return &Bypass{
		fs:     fsys,
		guard:  g,
		paths:  paths.NewGamePaths(gameRoot),
		logger: logging.GetLogger("launcher"),
	}
}

// Applied reports whether the bypass is currently in place. The parked
// launcher is the marker: it only exists while the swap is active.
func (b *Bypass) Applied() bool {
	_, err := b.fs.Stat(b.paths.LauncherBackupPath())
	return err == nil
}

// Apply puts the bypass in place. Already applied is a no-op. If copying
// the game executable fails after the launcher was parked, the park is
// undone so the installation is left as found.
func (b *Bypass) Apply() error {
	if err := b.guard.Check("modify the launcher"); err != nil {
		return err
	}
	if b.Applied() {
		return nil
	}

	launcher := b.paths.LauncherPath()
	parked := b.paths.LauncherBackupPath()
	gameExe := b.paths.GameExePath()

	if _, err := b.fs.Stat(launcher); err != nil {
		return errors.New(errors.ErrPreconditionFailed, "required executables not found")
	}
	data, err := b.fs.ReadFile(gameExe)
	if err != nil {
		return errors.New(errors.ErrPreconditionFailed, "required executables not found")
	}

	if err := b.fs.Rename(launcher, parked); err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "failed to park launcher")
	}
	if err := b.fs.WriteFile(launcher, data, 0755); err != nil {
		if undoErr := b.fs.Rename(parked, launcher); undoErr != nil {
			b.logger.Error().Err(undoErr).Msg("Failed to restore launcher after aborted bypass")
		}
		return errors.Wrap(err, errors.ErrIOFailure, "failed to install bypass executable")
	}

	b.logger.Info().Msg("Launcher bypass applied")
	return nil
}

// Remove restores the original launcher. Not applied is a no-op.
func (b *Bypass) Remove() error {
	if err := b.guard.Check("modify the launcher"); err != nil {
		return err
	}
	if !b.Applied() {
		return nil
	}

	launcher := b.paths.LauncherPath()
	parked := b.paths.LauncherBackupPath()

	if err := b.fs.Remove(launcher); err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "failed to remove bypass executable")
	}
	if err := b.fs.Rename(parked, launcher); err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "failed to restore launcher")
	}

	b.logger.Info().Msg("Launcher bypass removed")
	return nil
}
