package components

import (
	"strings"

	"github.com/notekeep/notekeep/internal/tui/styles"
)

// NotePreview is a note card in the notes list.
type NotePreview struct {
	Title string
	Body  string
}

// Render draws the preview with the NoteListPreview styles of its color.
func (n NotePreview) Render(styleSet styles.Styles, width int, hovered bool) string {
	frame := styleSet.Frame
	if hovered {
		frame = styleSet.Hover
	}
	if width > 0 {
		frame = frame.Copy().Width(width)
	}

	lines := []string{styleSet.Label.Render(n.Title)}
	if body := strings.TrimSpace(n.Body); body != "" {
		lines = append(lines, styleSet.Muted.Render(body))
	}
	return frame.Render(strings.Join(lines, "\n"))
}
