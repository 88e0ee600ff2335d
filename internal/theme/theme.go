// Package theme holds the notekeep palette table and the active theme.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKey reports a color key, theme, consumer class or icon type
	// outside the known set.
	ErrUnknownKey = errors.New("unknown key")
	// ErrMissingAsset reports an asset file absent at resolution time.
	ErrMissingAsset = errors.New("missing asset")
)

// Transparent is what ColorNone resolves to.
const Transparent = "transparent"

// ID identifies a theme. Its value doubles as the icon directory name.
type ID string

const (
	Dark  ID = "DARK"
	Light ID = "LIGHT"
)

// IDs lists the known themes.
func IDs() []ID {
	return []ID{Dark, Light}
}

// ParseID converts a case-insensitive theme name into an ID.
func ParseID(value string) (ID, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(Dark):
		return Dark, nil
	case string(Light):
		return Light, nil
	default:
		return "", fmt.Errorf("theme %q: %w", value, ErrUnknownKey)
	}
}

// ColorKey names a palette entry.
type ColorKey int

const (
	// ColorNone is the explicit "no color" variant. It is never stored in a
	// palette.
	ColorNone ColorKey = iota
	ColorDefault
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorTeal
	ColorBlue
	ColorCerulean
	ColorPurple
	ColorPink
	ColorBrown
	ColorGray
	ColorText
)

var colorKeyNames = map[ColorKey]string{
	ColorNone:     "NONE",
	ColorDefault:  "DEFAULT",
	ColorRed:      "RED",
	ColorOrange:   "ORANGE",
	ColorYellow:   "YELLOW",
	ColorGreen:    "GREEN",
	ColorTeal:     "TEAL",
	ColorBlue:     "BLUE",
	ColorCerulean: "CERULEAN",
	ColorPurple:   "PURPLE",
	ColorPink:     "PINK",
	ColorBrown:    "BROWN",
	ColorGray:     "GRAY",
	ColorText:     "text",
}

func (k ColorKey) String() string {
	if name, ok := colorKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ColorKey(%d)", int(k))
}

// Valid reports whether k is a known key, ColorNone included.
func (k ColorKey) Valid() bool {
	_, ok := colorKeyNames[k]
	return ok
}

// ParseColorKey converts a key name into a ColorKey. Matching is
// case-insensitive; an empty string or "none" yields ColorNone.
func ParseColorKey(value string) (ColorKey, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ColorNone, nil
	}
	for key, name := range colorKeyNames {
		if strings.EqualFold(name, trimmed) {
			return key, nil
		}
	}
	return ColorNone, fmt.Errorf("color %q: %w", value, ErrUnknownKey)
}

// NoteColors returns the note background keys in display order.
func NoteColors() []ColorKey {
	return []ColorKey{
		ColorDefault,
		ColorRed,
		ColorOrange,
		ColorYellow,
		ColorGreen,
		ColorTeal,
		ColorBlue,
		ColorCerulean,
		ColorPurple,
		ColorPink,
		ColorBrown,
		ColorGray,
	}
}

// ColorKeys returns every key a palette must define.
func ColorKeys() []ColorKey {
	return append(NoteColors(), ColorText)
}

// Palette maps color keys to literal color values.
type Palette map[ColorKey]string

// Clone returns a copy of p.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Validate checks that p defines every key in ColorKeys with a non-empty
// value and nothing else.
func (p Palette) Validate() error {
	for _, key := range ColorKeys() {
		if strings.TrimSpace(p[key]) == "" {
			return fmt.Errorf("palette missing %s", key)
		}
	}
	for key := range p {
		if key == ColorNone || !key.Valid() {
			return fmt.Errorf("palette defines %s: %w", key, ErrUnknownKey)
		}
	}
	return nil
}

// Palettes lists the built-in palettes by theme.
var Palettes = map[ID]Palette{
	Dark:  DarkPalette,
	Light: LightPalette,
}
