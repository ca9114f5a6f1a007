// Package paths provides centralized path handling for savekeeper.
// It resolves the manager's on-disk layout inside a profile root and a
// game installation root, validates a supplied game root, and discovers
// candidate save-profile locations.
package paths

import (
	"path/filepath"
	"strings"
)

// Layout constants. These define savekeeper's on-disk structure and are
// NOT user-configurable; they must remain consistent so existing profile
// data keeps working across installations.
const (
	// ManagerDirName is the manager-data directory created inside both
	// profile roots and the game root
	ManagerDirName = "_manager_data"

	// SlotsDirName is the subdirectory of ManagerDirName holding one
	// directory per slot
	SlotsDirName = "slots"

	// MetadataFileName is the per-profile metadata document
	MetadataFileName = "metadata.json"

	// ManifestFileName is the per-installation mod manifest
	ManifestFileName = "mods.json"

	// ActiveSaveArchiveName is the canonical active-save archive inside
	// a slot directory
	ActiveSaveArchiveName = "active_save.zip"

	// ArchiveExt is the extension for backup archives
	ArchiveExt = ".zip"

	// DisabledSuffix is appended to a mod file's name to disable it
	DisabledSuffix = ".disabled"
)

// Live save set membership. The game writes its live files directly into
// the profile root; everything the manager archives or clears matches
// one of these suffixes.
const (
	LiveSaveSuffix       = "gamedata.bin"
	LiveSaveBackupSuffix = ".binbak"
)

// Game installation structure.
const (
	// GameDirName is the expected basename of the installation root
	GameDirName = "FANTASY LIFE i"

	// LauncherExeName is the anti-cheat launcher the game ships with
	LauncherExeName = "EACLauncher.exe"

	// LauncherBackupName is where Apply parks the original launcher
	LauncherBackupName = "EACLauncher.exe.bak"

	// GameExeName is the game's own executable
	GameExeName = "NFL1.exe"

	// SteamAppID is the game's Steam application id
	SteamAppID = "2993780"
)

// ShippingExeRelPath is the shipping executable checked during validation.
var ShippingExeRelPath = filepath.Join("Game", "Binaries", "Win64", "NFL1-Win64-Shipping.exe")

// UserModsRelPath is the pak overlay directory that install auto-creates
// when a mod targets it.
var UserModsRelPath = filepath.Join("Game", "Content", "Paks", "~mods")

// IsLiveSaveFile reports whether a file name in a profile root belongs
// to the live save set.
func IsLiveSaveFile(name string) bool {
	return strings.HasSuffix(name, LiveSaveSuffix) || strings.HasSuffix(name, LiveSaveBackupSuffix)
}

// IsUserModsPath reports whether an archive-relative path (slash
// separated, any case) targets the user mods overlay directory.
func IsUserModsPath(relPath string) bool {
	return strings.HasPrefix(strings.ToLower(relPath), "game/content/paks/~mods/")
}

// ProfilePaths resolves the manager layout inside one profile root.
type ProfilePaths struct {
	root string
}

// NewProfilePaths returns the layout for the given profile root.
func NewProfilePaths(root string) ProfilePaths {
	return ProfilePaths{root: filepath.Clean(root)}
}

// Root returns the profile root directory.
func (p ProfilePaths) Root() string { return p.root }

// ManagerDir returns the manager-data directory for this profile.
func (p ProfilePaths) ManagerDir() string {
	return filepath.Join(p.root, ManagerDirName)
}

// SlotsDir returns the directory holding all slot directories.
func (p ProfilePaths) SlotsDir() string {
	return filepath.Join(p.ManagerDir(), SlotsDirName)
}

// MetadataPath returns the metadata document path.
func (p ProfilePaths) MetadataPath() string {
	return filepath.Join(p.ManagerDir(), MetadataFileName)
}

// SlotDir returns the archive directory for a slot.
func (p ProfilePaths) SlotDir(slotID string) string {
	return filepath.Join(p.SlotsDir(), slotID)
}

// ActiveSavePath returns the active-save archive path for a slot.
func (p ProfilePaths) ActiveSavePath(slotID string) string {
	return filepath.Join(p.SlotDir(slotID), ActiveSaveArchiveName)
}

// BackupPath returns the archive path for a backup within a slot.
func (p ProfilePaths) BackupPath(slotID, backupID string) string {
	return filepath.Join(p.SlotDir(slotID), backupID+ArchiveExt)
}

// GamePaths resolves manager-relevant locations inside a game
// installation root.
type GamePaths struct {
	root string
}

// NewGamePaths returns the layout for the given installation root.
func NewGamePaths(root string) GamePaths {
	return GamePaths{root: filepath.Clean(root)}
}

// Root returns the installation root directory.
func (g GamePaths) Root() string { return g.root }

// ManagerDir returns the manager-data directory inside the game tree.
func (g GamePaths) ManagerDir() string {
	return filepath.Join(g.root, ManagerDirName)
}

// ManifestPath returns the mod manifest path.
func (g GamePaths) ManifestPath() string {
	return filepath.Join(g.ManagerDir(), ManifestFileName)
}

// UserModsDir returns the pak overlay directory.
func (g GamePaths) UserModsDir() string {
	return filepath.Join(g.root, UserModsRelPath)
}

// LauncherPath returns the anti-cheat launcher path.
func (g GamePaths) LauncherPath() string {
	return filepath.Join(g.root, LauncherExeName)
}

// LauncherBackupPath returns the parked-launcher path used by the bypass.
func (g GamePaths) LauncherBackupPath() string {
	return filepath.Join(g.root, LauncherBackupName)
}

// GameExePath returns the game executable path.
func (g GamePaths) GameExePath() string {
	return filepath.Join(g.root, GameExeName)
}

// ShippingExePath returns the shipping executable path.
func (g GamePaths) ShippingExePath() string {
	return filepath.Join(g.root, ShippingExeRelPath)
}

// TenokeSaveDir returns the TENOKE save location inside the game tree.
func (g GamePaths) TenokeSaveDir() string {
	return filepath.Join(g.root, "Game", "Binaries", "Win64", "SteamData")
}
