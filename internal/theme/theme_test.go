package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEveryThemeAndKey(t *testing.T) {
	ctx, err := NewContext(Dark)
	require.NoError(t, err)

	for _, id := range IDs() {
		require.NoError(t, ctx.SetTheme(id))
		for _, key := range ColorKeys() {
			value, err := ctx.Lookup(key)
			require.NoError(t, err, "theme %s key %s", id, key)
			assert.NotEmpty(t, value, "theme %s key %s", id, key)
		}
	}
}

func TestPalettesShareKeySet(t *testing.T) {
	for id, palette := range Palettes {
		if err := palette.Validate(); err != nil {
			t.Fatalf("palette %s: %v", id, err)
		}
	}

	for key := range DarkPalette {
		if _, ok := LightPalette[key]; !ok {
			t.Errorf("LIGHT missing %s", key)
		}
	}
	for key := range LightPalette {
		if _, ok := DarkPalette[key]; !ok {
			t.Errorf("DARK missing %s", key)
		}
	}
}

func TestLookupKnownValues(t *testing.T) {
	ctx, err := NewContext(Dark)
	require.NoError(t, err)

	blue, err := ctx.Lookup(ColorBlue)
	require.NoError(t, err)
	assert.Equal(t, "#2d555e", blue)

	text, err := ctx.Lookup(ColorText)
	require.NoError(t, err)
	assert.Equal(t, "white", text)

	require.NoError(t, ctx.SetTheme(Light))

	blue, err = ctx.Lookup(ColorBlue)
	require.NoError(t, err)
	assert.Equal(t, "#cbf0f8", blue)

	text, err = ctx.Lookup(ColorText)
	require.NoError(t, err)
	assert.Equal(t, "black", text)
}

func TestLookupNoneIsTransparent(t *testing.T) {
	ctx, err := NewContext(Light)
	require.NoError(t, err)

	value, err := ctx.Lookup(ColorNone)
	require.NoError(t, err)
	assert.Equal(t, Transparent, value)
}

func TestLookupUnknownKey(t *testing.T) {
	ctx, err := NewContext(Dark)
	require.NoError(t, err)

	_, err = ctx.Lookup(ColorKey(99))
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	ctx, err := NewContext(Dark)
	require.NoError(t, err)

	err = ctx.SetTheme(ID("SEPIA"))
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, Dark, ctx.Theme())
}

func TestNewContextRejectsUnknownTheme(t *testing.T) {
	_, err := NewContext(ID("SEPIA"))
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestToggleNotifiesListeners(t *testing.T) {
	ctx, err := NewContext(Dark)
	require.NoError(t, err)

	var seen []ID
	ctx.OnChange(func(id ID) {
		seen = append(seen, id)
	})

	assert.Equal(t, Light, ctx.Toggle())
	assert.Equal(t, Dark, ctx.Toggle())
	require.NoError(t, ctx.SetTheme(Dark))

	assert.Equal(t, []ID{Light, Dark}, seen)
}

func TestOverrides(t *testing.T) {
	ctx, err := NewContext(Dark, WithOverrides(map[ID]map[ColorKey]string{
		Dark: {ColorRed: "#ff0000"},
	}))
	require.NoError(t, err)

	red, err := ctx.Lookup(ColorRed)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", red)

	// built-in table stays untouched
	assert.Equal(t, "#5c2b29", DarkPalette[ColorRed])
}

func TestOverridesRejectInvalidValues(t *testing.T) {
	cases := []map[ID]map[ColorKey]string{
		{Dark: {ColorRed: "crimson"}},
		{Dark: {ColorNone: "#000000"}},
		{ID("SEPIA"): {ColorRed: "#000000"}},
	}

	for _, overrides := range cases {
		if _, err := NewContext(Dark, WithOverrides(overrides)); err == nil {
			t.Fatalf("expected error for overrides %v", overrides)
		}
	}
}

func TestPaletteReturnsCopy(t *testing.T) {
	ctx, err := NewContext(Dark)
	require.NoError(t, err)

	palette, err := ctx.Palette(Dark)
	require.NoError(t, err)
	palette[ColorRed] = "#000000"

	red, err := ctx.Lookup(ColorRed)
	require.NoError(t, err)
	assert.Equal(t, "#5c2b29", red)
}

func TestParseColorKey(t *testing.T) {
	tests := []struct {
		input string
		want  ColorKey
	}{
		{"RED", ColorRed},
		{"red", ColorRed},
		{"text", ColorText},
		{"TEXT", ColorText},
		{"", ColorNone},
		{"none", ColorNone},
	}

	for _, tt := range tests {
		got, err := ParseColorKey(tt.input)
		if err != nil {
			t.Fatalf("ParseColorKey(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseColorKey(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := ParseColorKey("MAGENTA"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" light ")
	require.NoError(t, err)
	assert.Equal(t, Light, id)

	_, err = ParseID("auto")
	assert.ErrorIs(t, err, ErrUnknownKey)
}
