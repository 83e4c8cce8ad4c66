// Package ansicfg persists the ansipreview demo tool's user-facing
// settings (encoding policy, palette choice, theme) as a YAML dotfile,
// the way the teacher's own config package persists its settings.
package ansicfg

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EncodingPolicy names one of the ANSIEmitter's three encoding
// policies for config/serialization purposes.
type EncodingPolicy string

const (
	PolicyModern        EncodingPolicy = "modern"
	PolicyForcedPalette EncodingPolicy = "forced_palette"
	PolicyDOS           EncodingPolicy = "dos"
)

// Config is the ansipreview demo's persisted settings.
type Config struct {
	Policy      EncodingPolicy `yaml:"policy"`
	PaletteName string         `yaml:"palette_name"`
	ThemeName   string         `yaml:"theme_name"`
	IceMode     bool           `yaml:"ice_mode"`
}

// DefaultConfig returns the out-of-the-box settings.
func DefaultConfig() Config {
	return Config{
		Policy:      PolicyModern,
		PaletteName: "xterm256",
		ThemeName:   "dark",
		IceMode:     false,
	}
}

// configPath returns the dotfile path under the user's home directory.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ansipreview.yaml"), nil
}

// Load reads the config file, returning DefaultConfig if it doesn't
// exist yet.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to the dotfile, creating it if necessary.
func Save(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
