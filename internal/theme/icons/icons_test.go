package icons

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeep/notekeep/internal/theme"
)

const redSquare = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">` +
	`<rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`

func writeAssets(t *testing.T, fsys afero.Fs, names ...string) {
	t.Helper()
	for _, id := range theme.IDs() {
		for _, name := range names {
			path := filepath.Join("assets", "icons", string(id), name+".svg")
			require.NoError(t, afero.WriteFile(fsys, path, []byte(redSquare), 0o644))
		}
	}
}

func newLoader(t *testing.T, names ...string) (*theme.Context, *Loader) {
	t.Helper()
	ctx, err := theme.NewContext(theme.Dark)
	require.NoError(t, err)

	fsys := afero.NewMemMapFs()
	writeAssets(t, fsys, names...)
	return ctx, NewLoader(ctx, fsys, "", zerolog.Nop())
}

func TestLoadSimpleIcon(t *testing.T) {
	_, loader := newLoader(t, "search")

	icon, err := loader.Load("search")
	require.NoError(t, err)

	assert.False(t, icon.IsToggle())
	assert.Equal(t, []State{Off}, icon.States())

	img, ok := icon.Image(On)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("assets", "icons", "DARK", "search.svg"), img.Path)
	assert.NotEmpty(t, img.Data)
}

func TestLoadToggleIcon(t *testing.T) {
	_, loader := newLoader(t, "pin_filled", "pin_outlined")

	icon, err := loader.Load(Pin)
	require.NoError(t, err)

	assert.True(t, icon.IsToggle())
	assert.Equal(t, []State{Off, On}, icon.States())

	on, ok := icon.For(true)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("assets", "icons", "DARK", "pin_filled.svg"), on.Path)

	off, ok := icon.For(false)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("assets", "icons", "DARK", "pin_outlined.svg"), off.Path)
}

func TestLoadFollowsActiveTheme(t *testing.T) {
	ctx, loader := newLoader(t, "search")

	require.NoError(t, ctx.SetTheme(theme.Light))
	icon, err := loader.Load("search")
	require.NoError(t, err)

	img, _ := icon.Image(Off)
	assert.Equal(t, filepath.Join("assets", "icons", "LIGHT", "search.svg"), img.Path)
}

func TestLoadMissingAsset(t *testing.T) {
	_, loader := newLoader(t, "pin_filled")

	_, err := loader.Load("search")
	assert.ErrorIs(t, err, theme.ErrMissingAsset)

	// one toggle variant is not enough
	_, err = loader.Load(Pin)
	assert.ErrorIs(t, err, theme.ErrMissingAsset)
}

func TestLoadRejectsMalformedType(t *testing.T) {
	_, loader := newLoader(t)

	for _, name := range []Type{"", "../search", "icons/pin", "pin.svg"} {
		if _, err := loader.Load(name); !errors.Is(err, theme.ErrUnknownKey) {
			t.Fatalf("Load(%q): expected ErrUnknownKey, got %v", name, err)
		}
	}
}

func TestLoadRereadsFiles(t *testing.T) {
	ctx, err := theme.NewContext(theme.Dark)
	require.NoError(t, err)

	fsys := afero.NewMemMapFs()
	loader := NewLoader(ctx, fsys, "res", zerolog.Nop())
	path := loader.Path("search")

	require.NoError(t, afero.WriteFile(fsys, path, []byte("<svg/>"), 0o644))
	first, err := loader.Load("search")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fsys, path, []byte(redSquare), 0o644))
	second, err := loader.Load("search")
	require.NoError(t, err)

	a, _ := first.Image(Off)
	b, _ := second.Image(Off)
	assert.NotEqual(t, a.Data, b.Data)
}

func TestRasterize(t *testing.T) {
	img := Image{Path: "red.svg", Data: []byte(redSquare)}

	rgba, err := img.Rasterize(Size{W: 30, H: 34})
	require.NoError(t, err)
	assert.Equal(t, 30, rgba.Bounds().Dx())
	assert.Equal(t, 34, rgba.Bounds().Dy())

	r, _, _, a := rgba.At(15, 17).RGBA()
	assert.NotZero(t, a)
	assert.NotZero(t, r)

	_, err = img.Rasterize(Size{})
	assert.Error(t, err)
}
