package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/savekeeper/pkg/logging"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// SaveLocation is one candidate profile root, labeled for display.
type SaveLocation struct {
	Label string
	Path  string
}

// steamRootCandidates returns possible Steam installation roots for the
// current user. The first existing one wins.
func steamRootCandidates() []string {
	var roots []string
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots,
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(home, "Library", "Application Support", "Steam"),
		)
	}
	if pf := os.Getenv("ProgramFiles(x86)"); pf != "" {
		roots = append(roots, filepath.Join(pf, "Steam"))
	}
	return roots
}

// findSteamRoot returns the first existing Steam root, or "".
func findSteamRoot(fs types.FS) string {
	for _, root := range steamRootCandidates() {
		if info, err := fs.Stat(root); err == nil && info.IsDir() {
			return root
		}
	}
	return ""
}

// DiscoverGameRoot tries to locate the game installation under the Steam
// library. Returns "" when nothing valid is found.
func DiscoverGameRoot(fs types.FS) string {
	logger := logging.GetLogger("paths.discovery")

	steamRoot := findSteamRoot(fs)
	if steamRoot == "" {
		return ""
	}
	candidate := filepath.Join(steamRoot, "steamapps", "common", GameDirName)
	if err := ValidateGameRoot(fs, candidate); err != nil {
		logger.Debug().Str("candidate", candidate).Msg("Steam library candidate failed validation")
		return ""
	}
	return candidate
}

// DiscoverSaveLocations returns every candidate profile root for the
// current machine: one per Steam user plus the known emulator and crack
// save locations. Only locations whose parent directory exists are
// returned; the profile root itself may not exist yet.
func DiscoverSaveLocations(fs types.FS, gameRoot string) []SaveLocation {
	var found []SaveLocation

	if steamRoot := findSteamRoot(fs); steamRoot != "" {
		userdata := filepath.Join(steamRoot, "userdata")
		if entries, err := fs.ReadDir(userdata); err == nil {
			for _, entry := range entries {
				if !entry.IsDir() || !isAllDigits(entry.Name()) {
					continue
				}
				found = append(found, SaveLocation{
					Label: "Steam (" + entry.Name() + ")",
					Path:  filepath.Join(userdata, entry.Name(), SteamAppID, "remote"),
				})
			}
		}
	}

	appdata := os.Getenv("APPDATA")
	if appdata == "" {
		if home, err := os.UserHomeDir(); err == nil {
			appdata = filepath.Join(home, ".config")
		}
	}
	publicDocs := os.Getenv("PUBLIC")
	if publicDocs != "" {
		publicDocs = filepath.Join(publicDocs, "Documents")
	}

	others := []SaveLocation{}
	if publicDocs != "" {
		others = append(others,
			SaveLocation{Label: "Online-Fix", Path: filepath.Join(publicDocs, "OnlineFix", SteamAppID, "Saves")},
			SaveLocation{Label: "RUNE", Path: filepath.Join(publicDocs, "RUNE", SteamAppID, "Saves")},
		)
	}
	if appdata != "" {
		others = append(others,
			SaveLocation{Label: "GBE_Fork", Path: filepath.Join(appdata, "GSE Saves", SteamAppID, "remote")},
			SaveLocation{Label: "Goldberg", Path: filepath.Join(appdata, "Goldberg SteamEmu Saves", SteamAppID, "remote")},
		)
	}
	if gameRoot != "" {
		others = append(others, SaveLocation{Label: "TENOKE", Path: NewGamePaths(gameRoot).TenokeSaveDir()})
	}

	for _, loc := range others {
		if parentExists(fs, loc.Path) {
			found = append(found, loc)
		}
	}
	return found
}

func parentExists(fs types.FS, path string) bool {
	info, err := fs.Stat(filepath.Dir(path))
	return err == nil && info.IsDir()
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
