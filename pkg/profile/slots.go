package profile

import (
	"sort"
	"strings"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// CreateSlot adds a new empty slot: no backups, no active save, no
// timestamp. Returns the new slot's id.
func (s *Store) CreateSlot(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New(errors.ErrValidationFailed, "slot name cannot be empty")
	}
	id := types.NewID()
	err := s.mutate(func(p *types.Profile) error {
		p.Slots[id] = &types.Slot{
			Name:          name,
			BackupCounter: 1,
			Backups:       make(map[string]*types.Backup),
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("slot", id).Str("name", name).Msg("Slot created")
	return id, nil
}

// InitializeFromGameSave creates the profile's first slot from an
// already existing live save: the slot is created, made active, and the
// live files are snapshotted as its active save in one operation.
func (s *Store) InitializeFromGameSave(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New(errors.ErrValidationFailed, "slot name cannot be empty")
	}
	if !s.HasLiveSave() {
		return "", errors.New(errors.ErrPreconditionFailed, "no live save present to initialize from")
	}
	id := types.NewID()
	err := s.mutate(func(p *types.Profile) error {
		p.Slots[id] = &types.Slot{
			Name:          name,
			BackupCounter: 1,
			Backups:       make(map[string]*types.Backup),
		}
		if err := s.snapshotLive(p, id); err != nil {
			return err
		}
		p.ActiveSlotID = id
		return nil
	})
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("slot", id).Str("name", name).Msg("Slot initialized from existing save")
	return id, nil
}

// RenameSlot changes a slot's display name.
func (s *Store) RenameSlot(slotID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New(errors.ErrValidationFailed, "slot name cannot be empty")
	}
	return s.mutate(func(p *types.Profile) error {
		slot, err := slotOrNotFound(p, slotID)
		if err != nil {
			return err
		}
		slot.Name = name
		return nil
	})
}

// DeleteSlot removes a slot: its entire archive directory and its
// metadata entry. Deleting the active slot also clears the live file set
// and unsets the active slot, leaving the profile with no loaded save.
func (s *Store) DeleteSlot(slotID string) error {
	if err := s.guard.Check("delete a save slot"); err != nil {
		return err
	}
	err := s.mutate(func(p *types.Profile) error {
		if _, err := slotOrNotFound(p, slotID); err != nil {
			return err
		}
		if p.ActiveSlotID == slotID {
			if err := s.clearLiveFiles(); err != nil {
				return err
			}
			p.ActiveSlotID = ""
		}
		if err := s.fs.RemoveAll(s.paths.SlotDir(slotID)); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to remove slot directory %s", slotID)
		}
		delete(p.Slots, slotID)
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("slot", slotID).Msg("Slot deleted")
	return nil
}

// SlotInfo is a slot listing entry for display.
type SlotInfo struct {
	ID                  string
	Name                string
	Active              bool
	HasActiveSave       bool
	ActiveSaveTimestamp float64
	BackupCount         int
}

// Slots returns the profile's slots sorted by name (case-insensitive),
// id as tiebreaker.
func (s *Store) Slots() []SlotInfo {
	p := s.Load()
	infos := make([]SlotInfo, 0, len(p.Slots))
	for id, slot := range p.Slots {
		infos = append(infos, SlotInfo{
			ID:                  id,
			Name:                slot.Name,
			Active:              p.ActiveSlotID == id,
			HasActiveSave:       slot.HasActiveSave(),
			ActiveSaveTimestamp: slot.ActiveSaveTimestamp,
			BackupCount:         len(slot.Backups),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		a, b := strings.ToLower(infos[i].Name), strings.ToLower(infos[j].Name)
		if a != b {
			return a < b
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}
