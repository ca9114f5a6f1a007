package profile

import (
	"github.com/arthur-debert/savekeeper/pkg/archive"
	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/paths"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// snapshotLive archives the live file set into the slot's active-save
// archive and stamps the slot. Caller holds the profile lock.
func (s *Store) snapshotLive(p *types.Profile, slotID string) error {
	slot, err := slotOrNotFound(p, slotID)
	if err != nil {
		return err
	}
	if err := archive.Snapshot(s.fs, s.paths.Root(), paths.IsLiveSaveFile, s.paths.ActiveSavePath(slotID)); err != nil {
		return err
	}
	slot.ActiveSaveTimestamp = types.Timestamp(s.clock.Now())
	return nil
}

// hasActiveArchive reports whether the slot's active-save archive exists
// on disk.
func (s *Store) hasActiveArchive(slotID string) bool {
	_, err := s.fs.Stat(s.paths.ActiveSavePath(slotID))
	return err == nil
}

// SaveActiveGameState archives the current live file set as the slot's
// active save and updates its timestamp. A profile with no live files is
// a no-op: there is nothing to capture yet.
func (s *Store) SaveActiveGameState(slotID string) error {
	return s.mutate(func(p *types.Profile) error {
		if _, err := slotOrNotFound(p, slotID); err != nil {
			return err
		}
		if !s.HasLiveSave() {
			s.logger.Debug().Str("slot", slotID).Msg("No live save present, skipping snapshot")
			return nil
		}
		return s.snapshotLive(p, slotID)
	})
}

// LoadActiveSave replaces the live file set with the slot's active-save
// archive and marks the slot active. The slot must own an archive; use
// LoadSlot for the orchestrated path that also handles empty slots.
func (s *Store) LoadActiveSave(slotID string) error {
	if err := s.guard.Check("load a save slot"); err != nil {
		return err
	}
	return s.mutate(func(p *types.Profile) error {
		if _, err := slotOrNotFound(p, slotID); err != nil {
			return err
		}
		if !s.hasActiveArchive(slotID) {
			return errors.Newf(errors.ErrNotFound, "slot %s has no active save archive", slotID)
		}
		if err := s.clearLiveFiles(); err != nil {
			return err
		}
		if err := archive.Extract(s.fs, s.paths.ActiveSavePath(slotID), s.paths.Root()); err != nil {
			return err
		}
		p.ActiveSlotID = slotID
		return nil
	})
}

// LoadResult reports which path LoadSlot took.
type LoadResult struct {
	// FreshBaseline is true when the slot had no archive: the live set
	// was cleared and the game is expected to write a new save.
	FreshBaseline bool

	// PreviousSaved is true when the previously active slot's live
	// files were snapshotted before switching.
	PreviousSaved bool
}

// LoadSlot switches the profile's live file set to the given slot.
//
// When another slot is active and live files exist, its state is
// snapshotted first so switching never silently discards progress. A
// slot that owns an archive is extracted over the cleared live set; a
// slot without one (newly created) gets an empty baseline instead: the
// live set is cleared, the slot becomes active, and any stale timestamp
// on it is dropped so it reads as "no active save" until the game
// produces one.
func (s *Store) LoadSlot(slotID string) (LoadResult, error) {
	var res LoadResult
	if err := s.guard.Check("load a save slot"); err != nil {
		return res, err
	}
	err := s.mutate(func(p *types.Profile) error {
		if _, err := slotOrNotFound(p, slotID); err != nil {
			return err
		}

		prev := p.ActiveSlotID
		if prev != "" && prev != slotID && p.Slot(prev) != nil && s.HasLiveSave() {
			if err := s.snapshotLive(p, prev); err != nil {
				return err
			}
			res.PreviousSaved = true
		}

		if err := s.clearLiveFiles(); err != nil {
			return err
		}

		if s.hasActiveArchive(slotID) {
			if err := archive.Extract(s.fs, s.paths.ActiveSavePath(slotID), s.paths.Root()); err != nil {
				return err
			}
		} else {
			res.FreshBaseline = true
			p.Slot(slotID).ActiveSaveTimestamp = 0
		}

		p.ActiveSlotID = slotID
		return nil
	})
	if err != nil {
		return LoadResult{}, err
	}
	s.logger.Info().Str("slot", slotID).Bool("freshBaseline", res.FreshBaseline).Msg("Slot loaded")
	return res, nil
}
