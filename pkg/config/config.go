// Package config loads and persists the manager's own settings: the
// validated game installation root and launch preferences. Settings live
// in a TOML file under the user config directory; defaults are merged
// underneath so a missing file is never an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/savekeeper/pkg/errors"
)

// Settings is the persisted manager configuration.
type Settings struct {
	// GamePath is the validated game installation root, empty until the
	// user supplies one or discovery finds one.
	GamePath string `koanf:"game_path" toml:"game_path"`

	// LaunchViaSteam selects launching through Steam over starting the
	// launcher executable directly.
	LaunchViaSteam bool `koanf:"launch_via_steam" toml:"launch_via_steam"`
}

var defaultConfig = []byte(`
game_path = ""
launch_via_steam = true
`)

// Path returns the config file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "savekeeper", "savekeeper.toml")
}

// Load reads settings from path, layering the user file over defaults.
// An empty path uses the default location; a missing file yields the
// defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = Path()
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to decode config")
	}
	return &s, nil
}

// Save writes settings to path (default location when empty), creating
// parent directories as needed.
func Save(s *Settings, path string) error {
	if path == "" {
		path = Path()
	}
	data, err := gotoml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to write %s", path)
	}
	return nil
}
