// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notekeep/notekeep/internal/theme/icons"
	"github.com/notekeep/notekeep/internal/tui/styles"
)

// DefaultIconSize is the icon size of toggle buttons.
var DefaultIconSize = icons.Size{W: 30, H: 34}

// ToggledMsg reports a toggle button changing state.
type ToggledMsg struct {
	Type    icons.Type
	Checked bool
}

// ToggleButton is a checkable button showing a themed icon.
type ToggleButton struct {
	Icon     icons.Icon
	IconSize icons.Size

	checkable bool
	checked   bool
	styles    styles.Styles
}

// NewToggleButton returns a checkable button for icon.
func NewToggleButton(icon icons.Icon, styleSet styles.Styles) *ToggleButton {
	return &ToggleButton{
		Icon:      icon,
		IconSize:  DefaultIconSize,
		checkable: true,
		styles:    styleSet,
	}
}

// Checkable reports whether the button keeps a checked state.
func (b *ToggleButton) Checkable() bool {
	return b.checkable
}

// SetCheckable enables or disables the checked state. Disabling clears it.
func (b *ToggleButton) SetCheckable(checkable bool) {
	b.checkable = checkable
	if !checkable {
		b.checked = false
	}
}

// Checked reports the checked state.
func (b *ToggleButton) Checked() bool {
	return b.checked
}

// SetChecked sets the checked state; ignored when the button is not
// checkable.
func (b *ToggleButton) SetChecked(checked bool) {
	if !b.checkable {
		return
	}
	b.checked = checked
}

// Toggle flips the checked state and returns it.
func (b *ToggleButton) Toggle() bool {
	b.SetChecked(!b.checked)
	return b.checked
}

// SetIcon replaces the icon, e.g. after a theme switch.
func (b *ToggleButton) SetIcon(icon icons.Icon) {
	b.Icon = icon
}

// SetStyles replaces the styles used by View.
func (b *ToggleButton) SetStyles(styleSet styles.Styles) {
	b.styles = styleSet
}

// CurrentImage returns the icon variant for the checked state.
func (b *ToggleButton) CurrentImage() (icons.Image, bool) {
	return b.Icon.For(b.checked)
}

// Pixmap rasterizes the current icon variant at IconSize.
func (b *ToggleButton) Pixmap() (*image.RGBA, error) {
	img, ok := b.CurrentImage()
	if !ok {
		return nil, fmt.Errorf("icon %s has no image for checked=%t", b.Icon.Type, b.checked)
	}
	return img.Rasterize(b.IconSize)
}

func (b *ToggleButton) Init() tea.Cmd {
	return nil
}

func (b *ToggleButton) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch key.String() {
	case "enter", " ":
		if !b.checkable {
			return b, nil
		}
		checked := b.Toggle()
		iconType := b.Icon.Type
		return b, func() tea.Msg {
			return ToggledMsg{Type: iconType, Checked: checked}
		}
	}
	return b, nil
}

func (b *ToggleButton) View() string {
	label := string(b.Icon.Type)
	if img, ok := b.CurrentImage(); ok && img.Path != "" {
		label = strings.TrimSuffix(filepath.Base(img.Path), filepath.Ext(img.Path))
	}
	if b.checked {
		return b.styles.Checked.Render(label)
	}
	return b.styles.Button.Render(label)
}
