package pattern

import (
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"golang.org/x/exp/slices"
)

// ThreeNotesPerString finds three-string boxes three frets wide where every
// fret in the box on every string is a scale note. Windows start at most six
// frets below the top of the board.
func ThreeNotesPerString(scaleNotes []note.Note, fb instrument.Fretboard) []model.Pattern {
	var res []model.Pattern
	for startString := 0; startString < fb.Lines()-2; startString++ {
		for startFret := 0; startFret <= fb.Frets-6; startFret++ {
			if shape := box(startString, startFret, scaleNotes, fb); shape != nil {
				res = append(res, shape)
			}
		}
	}
	return res
}

func box(startString int, startFret int, scaleNotes []note.Note, fb instrument.Fretboard) model.Pattern {
	shape := make(model.Pattern, 0, 9)
	for s := startString; s < startString+3; s++ {
		for f := startFret; f < startFret+3; f++ {
			n, err := fb.NoteAt(s, f)
			if err != nil || !slices.Contains(scaleNotes, n) {
				return nil
			}
			shape = append(shape, model.Position{String: s, Fret: f, Note: n})
		}
	}
	return shape
}
