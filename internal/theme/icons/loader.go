package icons

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/notekeep/notekeep/internal/theme"
)

// DefaultRoot is the assets directory relative to the working directory.
const DefaultRoot = "assets"

// Loader resolves icons from the active theme's icon directory. It does not
// cache: every Load reads the files again.
type Loader struct {
	ctx    *theme.Context
	fs     afero.Fs
	root   string
	logger zerolog.Logger
}

// NewLoader creates a Loader reading from root on fsys. A nil fsys selects
// the OS filesystem and an empty root selects DefaultRoot.
func NewLoader(ctx *theme.Context, fsys afero.Fs, root string, logger zerolog.Logger) *Loader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if root == "" {
		root = DefaultRoot
	}
	return &Loader{
		ctx:    ctx,
		fs:     fsys,
		root:   root,
		logger: logger,
	}
}

// Dir returns the icon directory of the active theme.
func (l *Loader) Dir() string {
	return filepath.Join(l.root, "icons", string(l.ctx.Theme()))
}

// Path returns the path of the named SVG file under the active theme.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.Dir(), name+".svg")
}

// Load resolves t under the active theme.
func (l *Loader) Load(t Type) (Icon, error) {
	if err := validateType(t); err != nil {
		return Icon{}, err
	}

	files, ok := toggleFiles[t]
	if !ok {
		files = map[State]string{Off: string(t)}
	}

	icon := Icon{Type: t, images: make(map[State]Image, len(files))}
	for state, name := range files {
		img, err := l.read(name)
		if err != nil {
			return Icon{}, err
		}
		icon.images[state] = img
	}

	l.logger.Debug().
		Str("icon", string(t)).
		Str("theme", string(l.ctx.Theme())).
		Bool("toggle", icon.IsToggle()).
		Msg("icon loaded")
	return icon, nil
}

func (l *Loader) read(name string) (Image, error) {
	path := l.Path(name)
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn().Str("path", path).Msg("icon asset missing")
			return Image{}, fmt.Errorf("icon %s: %w", path, theme.ErrMissingAsset)
		}
		return Image{}, fmt.Errorf("read icon %s: %w", path, err)
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("icon %s is empty: %w", path, theme.ErrMissingAsset)
	}
	return Image{Path: path, Data: data}, nil
}

func validateType(t Type) error {
	name := string(t)
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("icon type %q: %w", name, theme.ErrUnknownKey)
	}
	return nil
}
