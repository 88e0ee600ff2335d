// Package config loads notekeep appearance settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/notekeep/notekeep/internal/logging"
	"github.com/notekeep/notekeep/internal/theme"
)

// ThemeAuto selects the theme from the operating system.
const ThemeAuto = "auto"

// EnvPrefix prefixes environment overrides, e.g. NOTEKEEP_THEME.
const EnvPrefix = "NOTEKEEP"

// Config is the notekeep appearance configuration.
type Config struct {
	Theme      string         `mapstructure:"theme"`
	AssetsDir  string         `mapstructure:"assets_dir"`
	ProjectDir string         `mapstructure:"project_dir"`
	Logging    logging.Config `mapstructure:"logging"`
	// Palettes overrides palette entries: theme name -> color key -> hex.
	Palettes map[string]map[string]string `mapstructure:"palettes"`
}

// DefaultConfigPath returns ~/.config/notekeep/config.yaml, or "" when the
// home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "notekeep", "config.yaml")
}

// Load reads configuration from path (or the default location when path is
// empty), the environment and built-in defaults. A missing default config
// file is not an error; a missing explicit path is.
func Load(fsys afero.Fs, path string) (*Config, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	v := viper.New()
	v.SetFs(fsys)
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path != "" {
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
		if explicit || exists {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", string(theme.Dark))
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("project_dir", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", logging.FormatConsole)
}

// Validate rejects unknown themes and palette keys.
func (c *Config) Validate() error {
	if _, err := c.ThemeID(); err != nil {
		return err
	}
	if _, err := c.Overrides(); err != nil {
		return err
	}
	return nil
}

// ThemeID resolves the configured theme; "auto" asks the operating system.
func (c *Config) ThemeID() (theme.ID, error) {
	if strings.EqualFold(strings.TrimSpace(c.Theme), ThemeAuto) {
		return theme.DetectSystemTheme(), nil
	}
	return theme.ParseID(c.Theme)
}

// Overrides converts the palette section into typed overrides.
func (c *Config) Overrides() (map[theme.ID]map[theme.ColorKey]string, error) {
	if len(c.Palettes) == 0 {
		return nil, nil
	}

	out := make(map[theme.ID]map[theme.ColorKey]string, len(c.Palettes))
	for name, entries := range c.Palettes {
		id, err := theme.ParseID(name)
		if err != nil {
			return nil, fmt.Errorf("palettes: %w", err)
		}
		typed := make(map[theme.ColorKey]string, len(entries))
		for keyName, value := range entries {
			key, err := theme.ParseColorKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("palettes.%s: %w", name, err)
			}
			if key == theme.ColorNone {
				return nil, fmt.Errorf("palettes.%s: color %q: %w", name, keyName, theme.ErrUnknownKey)
			}
			typed[key] = value
		}
		out[id] = typed
	}
	return out, nil
}
