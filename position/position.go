package position

import (
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"golang.org/x/exp/slices"
)

// Find returns every cell sounding n, string by string and fret by fret
// within a string. Cells the layout cannot resolve are skipped.
func Find(n note.Note, layout instrument.Layout) []model.Position {
	return FindAll([]note.Note{n}, layout)
}

func FindByName(name string, layout instrument.Layout) []model.Position {
	n, err := note.Parse(name)
	if err != nil {
		return nil
	}
	return Find(n, layout)
}

// FindAll returns every cell whose note is in notes, in Find order.
func FindAll(notes []note.Note, layout instrument.Layout) []model.Position {
	var res []model.Position
	for line := 0; line < layout.Lines(); line++ {
		for cell := 0; cell < layout.Cells(); cell++ {
			n, err := layout.NoteAt(line, cell)
			if err != nil {
				continue
			}
			if slices.Contains(notes, n) {
				res = append(res, model.Position{String: line, Fret: cell, Note: n})
			}
		}
	}
	return res
}
