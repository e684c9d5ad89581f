package pattern

import (
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/position"
	"golang.org/x/exp/slices"
)

type cell struct {
	line int
	cell int
}

// fretboard moves go to the next string down in index, same fret first
var fretboardMoves = []cell{{-1, 0}, {-1, -2}, {-1, -1}, {-1, 1}, {-1, 2}}

// grid moves: up, down, left, right
var gridMoves = []cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// walk extends a shape from root one step at a time, taking the first move
// that lands on an unvisited in-range scale note. It never backtracks.
func walk(root model.Position, scaleNotes []note.Note, layout instrument.Layout, moves []cell) model.Pattern {
	res := model.Pattern{root}
	visited := map[cell]bool{{root.String, root.Fret}: true}
	cur := root

	for len(res) < constants.MaxPatternLength {
		found := false
		for _, p := range moves {
			next := cell{cur.String + p.line, cur.Fret + p.cell}
			if next.line < 0 || next.line >= layout.Lines() || next.cell < 0 || next.cell >= layout.Cells() {
				continue
			}
			if visited[next] {
				continue
			}
			n, err := layout.NoteAt(next.line, next.cell)
			if err != nil || !slices.Contains(scaleNotes, n) {
				continue
			}
			cur = model.Position{String: next.line, Fret: next.cell, Note: n}
			res = append(res, cur)
			visited[next] = true
			found = true
			break
		}
		if !found {
			break
		}
	}

	if len(res) < constants.MinPatternLength {
		return nil
	}
	return res
}

// FromRoot builds a shape starting at root and stepping across strings
// toward index 0. Returns nil when fewer than five notes are reached.
func FromRoot(root model.Position, scaleNotes []note.Note, fb instrument.Fretboard) model.Pattern {
	return walk(root, scaleNotes, fb, fretboardMoves)
}

// CAGED runs FromRoot from every position of root.
func CAGED(scaleNotes []note.Note, root note.Note, fb instrument.Fretboard) []model.Pattern {
	var res []model.Pattern
	for _, p := range position.Find(root, fb) {
		if shape := FromRoot(p, scaleNotes, fb); shape != nil {
			res = append(res, shape)
		}
	}
	return res
}

func FromRootGrid(root model.Position, scaleNotes []note.Note, g instrument.Grid) model.Pattern {
	return walk(root, scaleNotes, g, gridMoves)
}

func GridShapes(scaleNotes []note.Note, root note.Note, g instrument.Grid) []model.Pattern {
	var res []model.Pattern
	for _, p := range position.Find(root, g) {
		if shape := FromRootGrid(p, scaleNotes, g); shape != nil {
			res = append(res, shape)
		}
	}
	return res
}

// Shapes picks CAGED or GridShapes depending on the layout.
func Shapes(scaleNotes []note.Note, root note.Note, layout instrument.Layout) []model.Pattern {
	switch l := layout.(type) {
	case instrument.Fretboard:
		return CAGED(scaleNotes, root, l)
	case instrument.Grid:
		return GridShapes(scaleNotes, root, l)
	}
	return nil
}
