package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeep/notekeep/internal/theme"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, "DARK", cfg.Theme)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	id, err := cfg.ThemeID()
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, id)
}

func TestLoadFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := "/etc/notekeep/config.yaml"
	data := `theme: light
assets_dir: /opt/notekeep/assets
logging:
  level: debug
  format: json
palettes:
  dark:
    red: "#ff0000"
`
	require.NoError(t, afero.WriteFile(fsys, path, []byte(data), 0o644))

	cfg, err := Load(fsys, path)
	require.NoError(t, err)

	id, err := cfg.ThemeID()
	require.NoError(t, err)
	assert.Equal(t, theme.Light, id)
	assert.Equal(t, "/opt/notekeep/assets", cfg.AssetsDir)
	assert.Equal(t, "json", cfg.Logging.Format)

	overrides, err := cfg.Overrides()
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", overrides[theme.Dark][theme.ColorRed])
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NOTEKEEP_THEME", "light")
	t.Setenv("NOTEKEEP_LOGGING_LEVEL", "warn")

	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope/config.yaml")
	assert.Error(t, err)
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	cfg := &Config{Theme: "sepia"}
	assert.ErrorIs(t, cfg.Validate(), theme.ErrUnknownKey)

	cfg = &Config{Theme: "dark", Palettes: map[string]map[string]string{"dark": {"magenta": "#ff00ff"}}}
	assert.ErrorIs(t, cfg.Validate(), theme.ErrUnknownKey)

	cfg = &Config{Theme: "auto"}
	assert.NoError(t, cfg.Validate())
}
