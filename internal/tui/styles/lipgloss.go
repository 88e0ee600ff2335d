// Package styles converts resolved stylesheet descriptors into lipgloss styles.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/notekeep/notekeep/internal/theme"
	"github.com/notekeep/notekeep/internal/theme/stylesheet"
)

// FrameBorderColor matches the frame border of the stylesheet template.
const FrameBorderColor = "#636466"

var namedColors = map[string]string{
	"white": "#ffffff",
	"black": "#000000",
}

// Styles contains lipgloss styles for one consumer class.
type Styles struct {
	Descriptor stylesheet.Descriptor
	Frame      lipgloss.Style
	Hover      lipgloss.Style
	Body       lipgloss.Style
	Label      lipgloss.Style
	Muted      lipgloss.Style
	Button     lipgloss.Style
	Checked    lipgloss.Style
}

// BuildStyles converts a descriptor into lipgloss styles.
func BuildStyles(desc stylesheet.Descriptor) Styles {
	background := Color(desc.Background)
	text := Color(desc.Text)

	body := lipgloss.NewStyle().Background(background).Foreground(text)

	frame := body.Copy()
	if desc.BorderWidth > 0 {
		frame = frame.
			BorderStyle(frameBorder(desc.BorderRadius)).
			BorderForeground(lipgloss.Color(FrameBorderColor)).
			BorderBackground(background)
	}

	hover := frame.Copy()
	if desc.HoverRule != "" {
		hover = body.Copy().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(text).
			BorderBackground(background)
	}

	return Styles{
		Descriptor: desc,
		Frame:      frame,
		Hover:      hover,
		Body:       body,
		Label:      body.Copy(),
		Muted:      body.Copy().Faint(true),
		Button:     body.Copy().Padding(0, 1),
		Checked:    body.Copy().Padding(0, 1).Bold(true).Reverse(true),
	}
}

// Color converts a palette value into a terminal color. Transparent and
// empty values yield no color.
func Color(value string) lipgloss.TerminalColor {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" || trimmed == theme.Transparent {
		return lipgloss.NoColor{}
	}
	if hex, ok := namedColors[trimmed]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(trimmed)
}

// Swatch returns a style painting value as background with a readable
// foreground.
func Swatch(value string) lipgloss.Style {
	style := lipgloss.NewStyle().Background(Color(value)).Padding(0, 1)

	hex := strings.ToLower(strings.TrimSpace(value))
	if named, ok := namedColors[hex]; ok {
		hex = named
	}
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return style
	}
	l, _, _ := parsed.Lab()
	if l > 0.6 {
		return style.Foreground(lipgloss.Color("#000000"))
	}
	return style.Foreground(lipgloss.Color("#ffffff"))
}

func frameBorder(radius int) lipgloss.Border {
	if radius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}
