package components

import (
	"fmt"
	"strings"

	"github.com/notekeep/notekeep/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional glyph shown before the title.
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are keys or commands the user can try.
	Suggestions []Suggestion
}

// Suggestion pairs a key or command with a description.
type Suggestion struct {
	Command     string
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Label.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		for _, s := range e.Suggestions {
			line := fmt.Sprintf("  %s", styleSet.Label.Render(s.Command))
			if s.Description != "" {
				line += styleSet.Muted.Render(fmt.Sprintf("  %s", s.Description))
			}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// EmptyNotes is shown when the notes list has nothing to preview.
func EmptyNotes() EmptyState {
	return EmptyState{
		Icon:     "+",
		Title:    "No notes yet",
		Subtitle: "Notes you create appear here in their own colors.",
		Suggestions: []Suggestion{
			{Command: "t", Description: "switch between light and dark"},
			{Command: "p", Description: "toggle the pin"},
		},
	}
}
