package instrument

import (
	"strings"

	"github.com/jsphweid/fretdex/note"
	"github.com/pkg/errors"
)

var ErrOutOfRange = errors.New("position out of range")

// Layout is anything that maps (line, cell) coordinates to notes. For a
// fretboard lines are strings and cells are frets.
type Layout interface {
	Lines() int
	Cells() int
	NoteAt(line int, cell int) (note.Note, error)
}

// Tuning lists open-string notes, lowest string first.
type Tuning []note.Note

// TuningFromNames keeps unknown spellings as note.None so that a typo in a
// custom tuning only silences that string.
func TuningFromNames(names []string) Tuning {
	res := make(Tuning, 0, len(names))
	for _, name := range names {
		n, err := note.Parse(strings.TrimSpace(name))
		if err != nil {
			n = note.None
		}
		res = append(res, n)
	}
	return res
}

func ParseTuning(names []string) (Tuning, error) {
	res := make(Tuning, 0, len(names))
	for i, name := range names {
		n, err := note.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil, errors.Wrapf(err, "string %d", i)
		}
		res = append(res, n)
	}
	return res, nil
}

func (t Tuning) Names() []string {
	return note.Strings(t)
}

func (t Tuning) String() string {
	return strings.Join(t.Names(), " ")
}

type Fretboard struct {
	Tuning Tuning
	// inclusive, so a 20 fret board has 21 cells per string
	Frets int
}

func (f Fretboard) Lines() int {
	return len(f.Tuning)
}

func (f Fretboard) Cells() int {
	return f.Frets + 1
}

// NoteAt does not bound the fret; callers scanning the board stay within
// Cells.
func (f Fretboard) NoteAt(str int, fret int) (note.Note, error) {
	if str < 0 || str >= len(f.Tuning) {
		return note.None, errors.Wrapf(ErrOutOfRange, "string %d of %d", str, len(f.Tuning))
	}
	open := f.Tuning[str]
	if !open.Valid() {
		return note.None, errors.Wrapf(ErrOutOfRange, "string %d has no open note", str)
	}
	return note.Transpose(open, fret), nil
}

// Grid is an isomorphic pad layout: moving one row adds RowStep semitones and
// one column adds ColStep.
type Grid struct {
	Name    string `json:"name" yaml:"name"`
	Rows    int    `json:"rows" yaml:"rows"`
	Cols    int    `json:"cols" yaml:"cols"`
	RowStep int    `json:"row_step" yaml:"row_step"`
	ColStep int    `json:"col_step" yaml:"col_step"`
}

func (g Grid) Lines() int {
	return g.Rows
}

func (g Grid) Cells() int {
	return g.Cols
}

func (g Grid) NoteAt(row int, col int) (note.Note, error) {
	return note.At(row*g.RowStep + col*g.ColStep), nil
}
