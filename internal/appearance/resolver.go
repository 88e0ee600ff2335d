// Package appearance is the theme resolver consumed by widget construction
// code: palette lookups, stylesheets, icons and toggle buttons.
package appearance

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/notekeep/notekeep/internal/config"
	"github.com/notekeep/notekeep/internal/theme"
	"github.com/notekeep/notekeep/internal/theme/icons"
	"github.com/notekeep/notekeep/internal/theme/stylesheet"
	"github.com/notekeep/notekeep/internal/tui/components"
	"github.com/notekeep/notekeep/internal/tui/styles"
)

// Options configure a Resolver.
type Options struct {
	Theme     theme.ID
	Overrides map[theme.ID]map[theme.ColorKey]string
	// Template is the stylesheet template; empty selects the builtin one.
	Template       string
	TemplateSource string
	Fs             afero.Fs
	AssetsDir      string
	Logger         zerolog.Logger
}

// Resolver binds one theme context to a stylesheet builder and an icon
// loader. Like the context it wraps, it belongs to the UI goroutine.
type Resolver struct {
	ctx    *theme.Context
	sheets *stylesheet.Builder
	icons  *icons.Loader
	source string
	logger zerolog.Logger
}

// New builds a Resolver from opts.
func New(opts Options) (*Resolver, error) {
	if opts.Theme == "" {
		opts.Theme = theme.Dark
	}
	if opts.TemplateSource == "" {
		opts.TemplateSource = stylesheet.SourceBuiltin
	}

	ctx, err := theme.NewContext(opts.Theme,
		theme.WithLogger(opts.Logger),
		theme.WithOverrides(opts.Overrides),
	)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		ctx:    ctx,
		sheets: stylesheet.NewBuilder(ctx, opts.Template, opts.Logger),
		icons:  icons.NewLoader(ctx, opts.Fs, opts.AssetsDir, opts.Logger),
		source: opts.TemplateSource,
		logger: opts.Logger,
	}, nil
}

// FromConfig builds a Resolver from loaded configuration, picking up a
// stylesheet override from the template search paths.
func FromConfig(cfg *config.Config, fsys afero.Fs, logger zerolog.Logger) (*Resolver, error) {
	id, err := cfg.ThemeID()
	if err != nil {
		return nil, err
	}
	overrides, err := cfg.Overrides()
	if err != nil {
		return nil, err
	}
	tmpl, source, err := stylesheet.LoadTemplate(fsys, cfg.ProjectDir)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("theme", string(id)).
		Str("stylesheet", source).
		Str("assets", cfg.AssetsDir).
		Msg("appearance configured")

	return New(Options{
		Theme:          id,
		Overrides:      overrides,
		Template:       tmpl,
		TemplateSource: source,
		Fs:             fsys,
		AssetsDir:      cfg.AssetsDir,
		Logger:         logger,
	})
}

// Context returns the theme context.
func (r *Resolver) Context() *theme.Context { return r.ctx }

// Stylesheets returns the stylesheet builder.
func (r *Resolver) Stylesheets() *stylesheet.Builder { return r.sheets }

// Icons returns the icon loader.
func (r *Resolver) Icons() *icons.Loader { return r.icons }

// TemplateSource names where the stylesheet template came from.
func (r *Resolver) TemplateSource() string { return r.source }

// Theme returns the active theme.
func (r *Resolver) Theme() theme.ID { return r.ctx.Theme() }

// SetTheme switches the active theme.
func (r *Resolver) SetTheme(id theme.ID) error { return r.ctx.SetTheme(id) }

// Toggle flips between DARK and LIGHT.
func (r *Resolver) Toggle() theme.ID { return r.ctx.Toggle() }

// Lookup returns the literal value of key under the active theme.
func (r *Resolver) Lookup(key theme.ColorKey) (string, error) {
	return r.ctx.Lookup(key)
}

// Stylesheet returns the substituted stylesheet for class and key.
func (r *Resolver) Stylesheet(class stylesheet.Class, key theme.ColorKey) (string, error) {
	return r.sheets.Stylesheet(class, key)
}

// Styles returns lipgloss styles for class and key.
func (r *Resolver) Styles(class stylesheet.Class, key theme.ColorKey) (styles.Styles, error) {
	desc, err := r.sheets.Describe(class, key)
	if err != nil {
		return styles.Styles{}, err
	}
	return styles.BuildStyles(desc), nil
}

// Icon loads t from the active theme's icon directory.
func (r *Resolver) Icon(t icons.Type) (icons.Icon, error) {
	return r.icons.Load(t)
}

// ToggleButton returns a checkable button showing t at the default icon
// size, styled for the title bar.
func (r *Resolver) ToggleButton(t icons.Type) (*components.ToggleButton, error) {
	icon, err := r.Icon(t)
	if err != nil {
		return nil, err
	}
	styleSet, err := r.Styles(stylesheet.TitleBar, theme.ColorDefault)
	if err != nil {
		return nil, err
	}
	return components.NewToggleButton(icon, styleSet), nil
}
