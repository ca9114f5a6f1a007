package profile

import (
	"path/filepath"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// HasSlot reports whether the profile currently has a slot with the
// given id. Callers use it to ask for overwrite confirmation before
// CopySlotTo, which itself always overwrites.
func (s *Store) HasSlot(slotID string) bool {
	return s.Load().Slot(slotID) != nil
}

// CopySlotTo copies a slot into another profile: the slot's full archive
// directory (active save plus every backup) and its metadata record,
// verbatim and under the same id. An existing slot with that id in the
// destination is replaced. The destination's active slot is not touched.
func (s *Store) CopySlotTo(dest *Store, slotID string) error {
	if dest.Root() == s.Root() {
		return errors.New(errors.ErrConflict, "source and destination profile are the same")
	}

	// Lock both profiles in path order so two opposed copies cannot
	// deadlock.
	first, second := lockFor(s.Root()), lockFor(dest.Root())
	if dest.Root() < s.Root() {
		first, second = second, first
	}
	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()

	src := s.Load()
	slot := src.Slot(slotID)
	if slot == nil {
		return errors.Newf(errors.ErrNotFound, "slot %s does not exist", slotID)
	}

	destDir := dest.paths.SlotDir(slotID)
	if err := dest.fs.RemoveAll(destDir); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to clear destination slot directory %s", slotID)
	}
	if err := copyDir(s.fs, dest.fs, s.paths.SlotDir(slotID), destDir); err != nil {
		return err
	}

	destProfile := dest.Load()
	destProfile.Slots[slotID] = cloneSlot(slot)
	if err := dest.save(destProfile); err != nil {
		return err
	}

	s.logger.Info().Str("slot", slotID).Str("dest", dest.Root()).Msg("Slot copied")
	return nil
}

// copyDir recursively copies a directory across (possibly distinct)
// filesystems. A missing source directory copies as empty: a slot that
// never archived anything still gets its metadata record.
func copyDir(srcFS, destFS types.FS, srcDir, destDir string) error {
	if err := destFS.MkdirAll(destDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to create %s", destDir)
	}
	entries, err := srcFS.ReadDir(srcDir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		srcPath := filepath.Join(srcDir, entry.Name())
		destPath := filepath.Join(destDir, entry.Name())
		if entry.IsDir() {
			if err := copyDir(srcFS, destFS, srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		data, err := srcFS.ReadFile(srcPath)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", srcPath)
		}
		if err := destFS.WriteFile(destPath, data, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s", destPath)
		}
	}
	return nil
}

func cloneSlot(slot *types.Slot) *types.Slot {
	out := &types.Slot{
		Name:                slot.Name,
		BackupCounter:       slot.BackupCounter,
		ActiveSaveTimestamp: slot.ActiveSaveTimestamp,
		Backups:             make(map[string]*types.Backup, len(slot.Backups)),
	}
	for id, b := range slot.Backups {
		copied := *b
		out.Backups[id] = &copied
	}
	return out
}
