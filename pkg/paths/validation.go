package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/savekeeper/pkg/errors"
	"github.com/arthur-debert/savekeeper/pkg/types"
)

// ValidateGameRoot checks that path points at a structurally valid game
// installation. On failure it returns a VALIDATION_FAILED error carrying
// every defect found under the "problems" detail, so callers can surface
// the full list at once.
func ValidateGameRoot(fs types.FS, path string) error {
	if path == "" {
		return errors.New(errors.ErrValidationFailed, "no game path supplied").
			WithDetail("problems", []string{"Path does not exist."})
	}

	info, err := fs.Stat(path)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrValidationFailed, "game path %q is not a directory", path).
			WithDetail("problems", []string{"Path does not exist."})
	}

	var problems []string
	if filepath.Base(filepath.Clean(path)) != GameDirName {
		problems = append(problems, "Folder not named '"+GameDirName+"'.")
	}
	if _, err := fs.Stat(filepath.Join(path, LauncherExeName)); err != nil {
		problems = append(problems, "Missing '"+LauncherExeName+"'.")
	}
	if _, err := fs.Stat(filepath.Join(path, GameExeName)); err != nil {
		problems = append(problems, "Missing '"+GameExeName+"'.")
	}
	if _, err := fs.Stat(filepath.Join(path, ShippingExeRelPath)); err != nil {
		problems = append(problems, "Missing shipping executable.")
	}

	if len(problems) > 0 {
		return errors.Newf(errors.ErrValidationFailed, "invalid game path %q: %s",
			path, strings.Join(problems, " ")).
			WithDetail("problems", problems)
	}
	return nil
}

// ValidationProblems extracts the per-defect list from a validation
// error, or nil for other errors.
func ValidationProblems(err error) []string {
	se, ok := err.(*errors.SavekeeperError)
	if !ok || se.Code != errors.ErrValidationFailed {
		return nil
	}
	problems, _ := se.Details["problems"].([]string)
	return problems
}
