package tui

import (
	"github.com/notekeep/notekeep/internal/theme"
	"github.com/notekeep/notekeep/internal/tui/components"
)

type sampleNote struct {
	color   theme.ColorKey
	preview components.NotePreview
}

func sampleNotes() []sampleNote {
	bodies := map[theme.ColorKey]components.NotePreview{
		theme.ColorDefault:  {Title: "Inbox", Body: "Unsorted thoughts"},
		theme.ColorRed:      {Title: "Urgent", Body: "Renew passport"},
		theme.ColorOrange:   {Title: "Errands", Body: "Pick up dry cleaning"},
		theme.ColorYellow:   {Title: "Ideas", Body: "Garden planter layout"},
		theme.ColorGreen:    {Title: "Groceries", Body: "Milk, eggs, basil"},
		theme.ColorTeal:     {Title: "Travel", Body: "Lisbon in May"},
		theme.ColorBlue:     {Title: "Work", Body: "Quarterly review notes"},
		theme.ColorCerulean: {Title: "Reading", Body: "Finish chapter 4"},
		theme.ColorPurple:   {Title: "Music", Body: "Practice scales"},
		theme.ColorPink:     {Title: "Gifts", Body: "Birthday list"},
		theme.ColorBrown:    {Title: "Recipes", Body: "Sourdough starter"},
		theme.ColorGray:     {Title: "Archive", Body: "Old meeting notes"},
	}

	notes := make([]sampleNote, 0, len(bodies))
	for _, key := range theme.NoteColors() {
		notes = append(notes, sampleNote{color: key, preview: bodies[key]})
	}
	return notes
}
