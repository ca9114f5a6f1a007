package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/savekeeper/pkg/archive"
	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/paths"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// autoBackupTimeLayout names backups created automatically before a
// backup restore overwrites live progress.
const autoBackupTimeLayout = "2006-01-02 15.04.05"

// CreateBackup snapshots the current live file set as a new manual
// backup of the slot. An empty name gets the default "Backup - NNNN"
// from the slot's counter. The caller is responsible for slotID being
// the currently loaded slot; the profile only has one live set, so the
// core does not verify ownership. Fails when no live files exist.
func (s *Store) CreateBackup(slotID, name string) (string, error) {
	if !s.HasLiveSave() {
		return "", errors.New(errors.ErrPreconditionFailed, "no live save present to back up")
	}
	id := types.NewID()
	err := s.mutate(func(p *types.Profile) error {
		slot, err := slotOrNotFound(p, slotID)
		if err != nil {
			return err
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Backup - %04d", slot.BackupCounter)
		}
		if err := archive.Snapshot(s.fs, s.paths.Root(), paths.IsLiveSaveFile, s.paths.BackupPath(slotID, id)); err != nil {
			return err
		}
		slot.Backups[id] = &types.Backup{
			Name:      name,
			Timestamp: types.Timestamp(s.clock.Now()),
		}
		slot.BackupCounter++
		return nil
	})
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("slot", slotID).Str("backup", id).Str("name", name).Msg("Backup created")
	return id, nil
}

// ActivateOptions controls ActivateBackup.
type ActivateOptions struct {
	// BackupCurrent snapshots the currently active slot as an
	// "Auto-Backup" before its live files are overwritten. The caller
	// decides; restoring over unsaved progress is otherwise silent.
	BackupCurrent bool
}

// ActivateBackup restores a backup over the live file set and makes its
// slot active. The restored content is immediately re-snapshotted as the
// slot's fresh active save: the backup's own timestamp is not reused,
// and the backup archive itself stays untouched.
func (s *Store) ActivateBackup(slotID, backupID string, opts ActivateOptions) error {
	if err := s.guard.Check("restore a backup"); err != nil {
		return err
	}
	err := s.mutate(func(p *types.Profile) error {
		slot, err := slotOrNotFound(p, slotID)
		if err != nil {
			return err
		}
		if slot.Backups[backupID] == nil {
			return errors.Newf(errors.ErrNotFound, "backup %s does not exist in slot %s", backupID, slotID)
		}

		if opts.BackupCurrent {
			prev := p.ActiveSlotID
			if prev != "" && p.Slot(prev) != nil && s.HasLiveSave() {
				autoID := types.NewID()
				autoName := "Auto-Backup " + s.clock.Now().Format(autoBackupTimeLayout)
				if err := archive.Snapshot(s.fs, s.paths.Root(), paths.IsLiveSaveFile, s.paths.BackupPath(prev, autoID)); err != nil {
					return err
				}
				prevSlot := p.Slot(prev)
				prevSlot.Backups[autoID] = &types.Backup{
					Name:      autoName,
					Timestamp: types.Timestamp(s.clock.Now()),
				}
				prevSlot.BackupCounter++
			}
		}

		// Clear before extracting so files absent from the backup do
		// not survive the restore as stale residue.
		if err := s.clearLiveFiles(); err != nil {
			return err
		}
		if err := archive.Extract(s.fs, s.paths.BackupPath(slotID, backupID), s.paths.Root()); err != nil {
			return err
		}
		p.ActiveSlotID = slotID

		// Re-baseline: the restored content becomes the slot's current
		// active save with a fresh timestamp.
		return s.snapshotLive(p, slotID)
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("slot", slotID).Str("backup", backupID).Msg("Backup restored")
	return nil
}

// RenameBackup changes a backup's display name.
func (s *Store) RenameBackup(slotID, backupID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New(errors.ErrValidationFailed, "backup name cannot be empty")
	}
	return s.mutate(func(p *types.Profile) error {
		slot, err := slotOrNotFound(p, slotID)
		if err != nil {
			return err
		}
		backup := slot.Backups[backupID]
		if backup == nil {
			return errors.Newf(errors.ErrNotFound, "backup %s does not exist in slot %s", backupID, slotID)
		}
		backup.Name = name
		return nil
	})
}

// DeleteBackup removes one backup's archive and metadata entry. Other
// backups and the slot's active-save archive are untouched.
func (s *Store) DeleteBackup(slotID, backupID string) error {
	if err := s.guard.Check("delete a backup"); err != nil {
		return err
	}
	return s.mutate(func(p *types.Profile) error {
		slot, err := slotOrNotFound(p, slotID)
		if err != nil {
			return err
		}
		if slot.Backups[backupID] == nil {
			return errors.Newf(errors.ErrNotFound, "backup %s does not exist in slot %s", backupID, slotID)
		}
		backupPath := s.paths.BackupPath(slotID, backupID)
		if _, statErr := s.fs.Stat(backupPath); statErr == nil {
			if err := s.fs.Remove(backupPath); err != nil {
				return errors.Wrapf(err, errors.ErrIOFailure, "failed to remove backup archive %s", backupID)
			}
		}
		delete(slot.Backups, backupID)
		return nil
	})
}

// BackupInfo is a backup listing entry for display.
type BackupInfo struct {
	ID        string
	Name      string
	Timestamp float64
}

// Backups returns the slot's backups sorted newest first, id as
// tiebreaker.
func (s *Store) Backups(slotID string) ([]BackupInfo, error) {
	p := s.Load()
	slot, err := slotOrNotFound(p, slotID)
	if err != nil {
		return nil, err
	}
	infos := make([]BackupInfo, 0, len(slot.Backups))
	for id, b := range slot.Backups {
		infos = append(infos, BackupInfo{ID: id, Name: b.Name, Timestamp: b.Timestamp})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Timestamp != infos[j].Timestamp {
			return infos[i].Timestamp > infos[j].Timestamp
		}
		return infos[i].ID < infos[j].ID
	})
	return infos, nil
}
