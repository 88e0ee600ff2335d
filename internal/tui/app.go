// Package tui implements the notekeep appearance preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/notekeep/notekeep/internal/appearance"
	"github.com/notekeep/notekeep/internal/theme"
	"github.com/notekeep/notekeep/internal/theme/icons"
	"github.com/notekeep/notekeep/internal/theme/stylesheet"
	"github.com/notekeep/notekeep/internal/tui/components"
	"github.com/notekeep/notekeep/internal/tui/styles"
)

// Run launches the preview program.
func Run(resolver *appearance.Resolver) error {
	m, err := newModel(resolver)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

const (
	minWidth     = 40
	minHeight    = 12
	previewWidth = 28
)

type model struct {
	resolver *appearance.Resolver
	width    int
	height   int
	notes    []sampleNote
	selected int
	pin      *components.ToggleButton

	titleBar styles.Styles
	list     styles.Styles
	previews map[theme.ColorKey]styles.Styles
	err      error
}

func newModel(resolver *appearance.Resolver) (*model, error) {
	pin, err := resolver.ToggleButton(icons.Pin)
	if err != nil {
		return nil, err
	}
	m := &model{
		resolver: resolver,
		notes:    sampleNotes(),
		pin:      pin,
	}
	if err := m.restyle(); err != nil {
		return nil, err
	}
	return m, nil
}

// restyle rebuilds every style from the active theme.
func (m *model) restyle() error {
	titleBar, err := m.resolver.Styles(stylesheet.TitleBar, m.selectedColor())
	if err != nil {
		return err
	}
	list, err := m.resolver.Styles(stylesheet.NotesListWindow, theme.ColorDefault)
	if err != nil {
		return err
	}

	previews := make(map[theme.ColorKey]styles.Styles, len(m.notes))
	for _, note := range m.notes {
		set, err := m.resolver.Styles(stylesheet.NoteListPreview, note.color)
		if err != nil {
			return err
		}
		previews[note.color] = set
	}

	icon, err := m.resolver.Icon(icons.Pin)
	if err != nil {
		return err
	}
	m.pin.SetIcon(icon)
	m.pin.SetStyles(titleBar)

	m.titleBar = titleBar
	m.list = list
	m.previews = previews
	return nil
}

func (m *model) selectedColor() theme.ColorKey {
	if len(m.notes) == 0 {
		return theme.ColorDefault
	}
	return m.notes[m.selected].color
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			m.resolver.Toggle()
			m.err = m.restyle()
		case "right", "l", "down", "j":
			m.selected = (m.selected + 1) % len(m.notes)
			m.err = m.restyle()
		case "left", "h", "up", "k":
			m.selected = (m.selected + len(m.notes) - 1) % len(m.notes)
			m.err = m.restyle()
		case "p":
			_, cmd := m.pin.Update(tea.KeyMsg{Type: tea.KeyEnter})
			return m, cmd
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return m.smallView()
		}
	}

	lines := []string{m.titleLine(), ""}
	if m.err != nil {
		lines = append(lines, m.list.Label.Render(fmt.Sprintf("error: %v", m.err)), "")
	}

	if len(m.notes) == 0 {
		lines = append(lines, components.EmptyNotes().Render(m.list))
	} else {
		for i, note := range m.notes {
			lines = append(lines, note.preview.Render(m.previews[note.color], previewWidth, i == m.selected))
		}
	}

	lines = append(lines, "", m.list.Muted.Render("t theme | ←/→ color | p pin | q quit"))
	return m.list.Frame.Render(strings.Join(lines, "\n")) + "\n"
}

func (m *model) titleLine() string {
	title := fmt.Sprintf("notekeep · %s · %s", m.resolver.Theme(), m.selectedColor())
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.titleBar.Label.Render(title),
		m.titleBar.Body.Render("  "),
		m.pin.View(),
	)
}

func (m *model) smallView() string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)
	return strings.Join([]string{
		m.list.Label.Render(message),
		m.list.Muted.Render(hint),
		m.list.Muted.Render("Press q to quit."),
	}, "\n") + "\n"
}
