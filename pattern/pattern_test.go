package pattern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/util"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

var guitar = instrument.Fretboard{
	Tuning: instrument.Tuning{note.E, note.A, note.D, note.G, note.B, note.E},
	Frets:  12,
}

var cMajor = scale.Notes(note.C, "Major (Ionian)")

func TestFromRootHighE(t *testing.T) {
	root := model.Position{String: 5, Fret: 8, Note: note.C}
	want := model.Pattern{
		root,
		{String: 4, Fret: 8, Note: note.G},
		{String: 3, Fret: 7, Note: note.D},
		{String: 2, Fret: 7, Note: note.A},
		{String: 1, Fret: 7, Note: note.E},
		{String: 0, Fret: 7, Note: note.B},
	}
	if diff := cmp.Diff(want, FromRoot(root, cMajor, guitar)); diff != "" {
		t.Errorf("pattern mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRootTooShort(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(FromRoot(model.Position{String: 0, Fret: 8, Note: note.C}, cMajor, guitar))
	assert.Nil(FromRoot(model.Position{String: 3, Fret: 5, Note: note.C}, cMajor, guitar))
}

func TestCAGED(t *testing.T) {
	got := CAGED(cMajor, note.C, guitar)
	assert.Len(t, got, 2)
	assert.Equal(t, model.Pattern{
		{String: 4, Fret: 1, Note: note.C},
		{String: 3, Fret: 0, Note: note.G},
		{String: 2, Fret: 0, Note: note.D},
		{String: 1, Fret: 0, Note: note.A},
		{String: 0, Fret: 0, Note: note.E},
	}, got[0])
	assert.Equal(t, 5, got[1][0].String)
}

func checkShape(t *testing.T, shape model.Pattern, scaleNotes []note.Note, root note.Note, layout instrument.Layout) {
	assert := assert.New(t)
	assert.GreaterOrEqual(len(shape), 5)
	assert.LessOrEqual(len(shape), 7)
	assert.Equal(root, shape[0].Note)

	seen := map[[2]int]bool{}
	for _, p := range shape {
		key := [2]int{p.String, p.Fret}
		assert.False(seen[key], "duplicate %v", p)
		seen[key] = true
		assert.True(slices.Contains(scaleNotes, p.Note))
		n, err := layout.NoteAt(p.String, p.Fret)
		assert.Nil(err)
		assert.Equal(n, p.Note)
	}
}

func TestCAGEDShapes(t *testing.T) {
	fb := instrument.Fretboard{Tuning: guitar.Tuning, Frets: 20}
	for _, name := range scale.Names() {
		t.Run(name, func(t *testing.T) {
			notes := scale.Notes(note.A, name)
			for _, shape := range CAGED(notes, note.A, fb) {
				checkShape(t, shape, notes, note.A, fb)
				for i := 1; i < len(shape); i++ {
					assert.Equal(t, shape[i-1].String-1, shape[i].String)
					assert.LessOrEqual(t, util.Abs(shape[i].Fret-shape[i-1].Fret), 2)
				}
			}
		})
	}
}

func TestGridShapes(t *testing.T) {
	g := instrument.Grid{Name: "Launchpad (Fourths)", Rows: 8, Cols: 8, RowStep: 5, ColStep: 1}
	shapes := GridShapes(cMajor, note.C, g)
	assert.NotEmpty(t, shapes)
	for _, shape := range shapes {
		checkShape(t, shape, cMajor, note.C, g)
		for i := 1; i < len(shape); i++ {
			step := util.Abs(shape[i].String-shape[i-1].String) + util.Abs(shape[i].Fret-shape[i-1].Fret)
			assert.Equal(t, 1, step)
		}
	}
}

func TestFromRootGrid(t *testing.T) {
	g := instrument.Grid{Rows: 8, Cols: 8, RowStep: 5, ColStep: 1}
	root := model.Position{String: 4, Fret: 4, Note: note.C}
	want := model.Pattern{
		root,
		{String: 3, Fret: 4, Note: note.G},
		{String: 2, Fret: 4, Note: note.D},
		{String: 1, Fret: 4, Note: note.A},
		{String: 0, Fret: 4, Note: note.E},
		{String: 0, Fret: 5, Note: note.F},
	}
	assert.Equal(t, want, FromRootGrid(root, cMajor, g))
	assert.Nil(t, FromRootGrid(model.Position{String: 0, Fret: 0, Note: note.C}, cMajor, g))
}

func TestShapesDispatch(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(CAGED(cMajor, note.C, guitar), Shapes(cMajor, note.C, guitar))
	g := instrument.Grid{Rows: 8, Cols: 8, RowStep: 5, ColStep: 1}
	assert.Equal(GridShapes(cMajor, note.C, g), Shapes(cMajor, note.C, g))
}

func TestThreeNotesPerString(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(ThreeNotesPerString(cMajor, guitar))

	chromatic := scale.Notes(note.C, "Chromatic")
	boxes := ThreeNotesPerString(chromatic, guitar)
	// four string triples times seven start frets
	assert.Len(boxes, 28)
	for _, b := range boxes {
		assert.Len(b, 9)
	}
	assert.Equal(model.Position{String: 0, Fret: 0, Note: note.E}, boxes[0][0])
	assert.Equal(model.Position{String: 2, Fret: 2, Note: note.E}, boxes[0][8])

	short := instrument.Fretboard{Tuning: guitar.Tuning, Frets: 5}
	assert.Empty(ThreeNotesPerString(chromatic, short))
}
