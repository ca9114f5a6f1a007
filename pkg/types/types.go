package types

import "time"

// ModStatus is the enable state of an installed mod.
type ModStatus string

const (
	ModEnabled  ModStatus = "enabled"
	ModDisabled ModStatus = "disabled"
)

// Mod is one installed modification package. Files is the complete,
// ordered list of relative paths the mod wrote at install time; toggle
// and delete operate on exactly this set and nothing else.
type Mod struct {
	Name   string    `json:"name"`
	Status ModStatus `json:"status"`
	Files  []string  `json:"files"`
}

// Backup is the metadata record for one manual snapshot.
type Backup struct {
	Name      string  `json:"name"`
	Timestamp float64 `json:"timestamp"`
}

// Slot is one named save progression within a profile.
//
// ActiveSaveTimestamp is non-zero iff the slot currently owns an
// active-save archive on disk.
type Slot struct {
	Name                string             `json:"name"`
	BackupCounter       int                `json:"backup_counter"`
	ActiveSaveTimestamp float64            `json:"active_save_timestamp,omitempty"`
	Backups             map[string]*Backup `json:"backups"`
}

// HasActiveSave reports whether the slot owns an active-save archive.
func (s *Slot) HasActiveSave() bool {
	return s.ActiveSaveTimestamp != 0
}

// Profile is the metadata document for one save-data location.
// ActiveSlotID is empty when no slot is loaded; when set it must key an
// existing entry in Slots.
type Profile struct {
	ActiveSlotID string           `json:"active_slot_uuid"`
	Slots        map[string]*Slot `json:"slots"`
}

// NewProfile returns the empty default profile document.
func NewProfile() *Profile {
	return &Profile{Slots: make(map[string]*Slot)}
}

// Slot returns the slot for id, or nil if absent.
func (p *Profile) Slot(id string) *Slot {
	if p.Slots == nil {
		return nil
	}
	return p.Slots[id]
}

// Timestamp converts a time to the fractional-seconds representation
// used in metadata documents.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// TimestampTime is the inverse of Timestamp.
func TimestampTime(ts float64) time.Time {
	return time.Unix(0, int64(ts*float64(time.Second)))
}
