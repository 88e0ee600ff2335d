package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
)

// Context carries the palette table and the active theme. Widget
// construction code receives it explicitly instead of reading a global.
//
// A Context is not safe for concurrent use; it is meant to be confined to
// the UI goroutine.
type Context struct {
	active    ID
	palettes  map[ID]Palette
	logger    zerolog.Logger
	listeners []func(ID)
}

// Option configures a Context.
type Option func(*contextOptions)

type contextOptions struct {
	logger    zerolog.Logger
	overrides map[ID]map[ColorKey]string
}

// WithLogger sets the logger used for theme switches.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *contextOptions) {
		o.logger = logger
	}
}

// WithOverrides replaces individual palette entries. Override values must be
// hex colors.
func WithOverrides(overrides map[ID]map[ColorKey]string) Option {
	return func(o *contextOptions) {
		o.overrides = overrides
	}
}

// NewContext builds a Context with initial as the active theme.
func NewContext(initial ID, opts ...Option) (*Context, error) {
	options := contextOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&options)
	}

	palettes := make(map[ID]Palette, len(Palettes))
	for id, palette := range Palettes {
		palettes[id] = palette.Clone()
	}

	for id, entries := range options.overrides {
		palette, ok := palettes[id]
		if !ok {
			return nil, fmt.Errorf("override theme %q: %w", id, ErrUnknownKey)
		}
		for key, value := range entries {
			if key == ColorNone || !key.Valid() {
				return nil, fmt.Errorf("override %s/%s: %w", id, key, ErrUnknownKey)
			}
			if _, err := colorful.Hex(value); err != nil {
				return nil, fmt.Errorf("override %s/%s: invalid hex color %q", id, key, value)
			}
			palette[key] = value
		}
	}

	for id, palette := range palettes {
		if err := palette.Validate(); err != nil {
			return nil, fmt.Errorf("theme %s: %w", id, err)
		}
	}

	if _, ok := palettes[initial]; !ok {
		return nil, fmt.Errorf("theme %q: %w", initial, ErrUnknownKey)
	}

	return &Context{
		active:   initial,
		palettes: palettes,
		logger:   options.logger,
	}, nil
}

// Theme returns the active theme.
func (c *Context) Theme() ID {
	return c.active
}

// SetTheme switches the active theme. Listeners run only when the theme
// actually changes.
func (c *Context) SetTheme(id ID) error {
	if _, ok := c.palettes[id]; !ok {
		return fmt.Errorf("theme %q: %w", id, ErrUnknownKey)
	}
	if id == c.active {
		return nil
	}

	previous := c.active
	c.active = id
	c.logger.Info().
		Str("from", string(previous)).
		Str("to", string(id)).
		Msg("theme switched")

	for _, fn := range c.listeners {
		fn(id)
	}
	return nil
}

// Toggle flips between DARK and LIGHT and returns the new theme.
func (c *Context) Toggle() ID {
	next := Dark
	if c.active == Dark {
		next = Light
	}
	// both themes always exist
	_ = c.SetTheme(next)
	return c.active
}

// OnChange registers fn to run after every theme switch.
func (c *Context) OnChange(fn func(ID)) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Lookup returns the literal value of key under the active theme. ColorNone
// resolves to Transparent.
func (c *Context) Lookup(key ColorKey) (string, error) {
	if key == ColorNone {
		return Transparent, nil
	}
	value, ok := c.palettes[c.active][key]
	if !ok {
		return "", fmt.Errorf("color %s: %w", key, ErrUnknownKey)
	}
	return value, nil
}

// Palette returns a copy of the palette for id.
func (c *Context) Palette(id ID) (Palette, error) {
	palette, ok := c.palettes[id]
	if !ok {
		return nil, fmt.Errorf("theme %q: %w", id, ErrUnknownKey)
	}
	return palette.Clone(), nil
}
