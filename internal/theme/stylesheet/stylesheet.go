// Package stylesheet resolves per-widget stylesheets from the active theme.
package stylesheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notekeep/notekeep/internal/theme"
)

// Class names a consumer of the stylesheet.
type Class string

const (
	TitleBar        Class = "TitleBar"
	NotesListWindow Class = "NotesListWindow"
	NoteListPreview Class = "NoteListPreview"
	NoteWindow      Class = "NoteWindow"
)

// Classes lists the known consumer classes.
func Classes() []Class {
	return []Class{TitleBar, NotesListWindow, NoteListPreview, NoteWindow}
}

// ParseClass converts a class name into a Class. Matching is
// case-insensitive.
func ParseClass(value string) (Class, error) {
	trimmed := strings.TrimSpace(value)
	for _, class := range Classes() {
		if strings.EqualFold(string(class), trimmed) {
			return class, nil
		}
	}
	return "", fmt.Errorf("class %q: %w", value, theme.ErrUnknownKey)
}

// Token is a placeholder marker embedded in the template.
type Token string

const (
	TokenBorderWidth  Token = "/*QFrame_border_width*/"
	TokenBorderRadius Token = "/*QFrame_border_radius*/"
	TokenHover        Token = "/*QFrame:hover*/"
	TokenNoteColor    Token = "/*note_color*/"
	TokenTextColor    Token = "/*text_color*/"
)

// HoverRule is the frame hover rule injected for note previews. It carries
// its own text color token.
const HoverRule = "QFrame:hover {border: 2px solid " + string(TokenTextColor) + ";}"

// Descriptor is the resolved style of one consumer class.
type Descriptor struct {
	Class        Class
	BorderWidth  int
	BorderRadius int
	Background   string
	Text         string
	// HoverRule is empty for classes without a hover rule.
	HoverRule string
}

// Substitution replaces one token with a literal value.
type Substitution struct {
	Token Token
	Value string
}

// Profile returns the substitutions for d in application order. The hover
// rule precedes the text color so its embedded token is resolved too.
func (d Descriptor) Profile() []Substitution {
	profile := make([]Substitution, 0, 5)
	profile = append(profile,
		Substitution{Token: TokenBorderWidth, Value: strconv.Itoa(d.BorderWidth)},
		Substitution{Token: TokenBorderRadius, Value: strconv.Itoa(d.BorderRadius)},
	)
	if d.HoverRule != "" {
		profile = append(profile, Substitution{Token: TokenHover, Value: d.HoverRule})
	}
	profile = append(profile,
		Substitution{Token: TokenNoteColor, Value: d.Background},
		Substitution{Token: TokenTextColor, Value: d.Text},
	)
	return profile
}

// Apply substitutes the profile of d into tmpl, token by token. Tokens the
// profile does not cover are left in place.
func (d Descriptor) Apply(tmpl string) string {
	out := tmpl
	for _, sub := range d.Profile() {
		out = strings.ReplaceAll(out, string(sub.Token), sub.Value)
	}
	return out
}

// Describe resolves the descriptor of class for the note color key under
// the active theme of ctx.
func Describe(ctx *theme.Context, class Class, key theme.ColorKey) (Descriptor, error) {
	if ctx == nil {
		return Descriptor{}, fmt.Errorf("theme context is required")
	}

	text, err := ctx.Lookup(theme.ColorText)
	if err != nil {
		return Descriptor{}, err
	}

	desc := Descriptor{Class: class, Text: text}
	background := key

	switch class {
	case TitleBar:
	case NotesListWindow:
		desc.BorderWidth = 2
		background = theme.ColorDefault
	case NoteListPreview:
		// only uncolored previews get a frame
		if key == theme.ColorDefault {
			desc.BorderWidth = 1
		}
		desc.BorderRadius = 15
		desc.HoverRule = HoverRule
	case NoteWindow:
		desc.BorderWidth = 2
	default:
		return Descriptor{}, fmt.Errorf("class %q: %w", class, theme.ErrUnknownKey)
	}

	desc.Background, err = ctx.Lookup(background)
	if err != nil {
		return Descriptor{}, err
	}
	return desc, nil
}
