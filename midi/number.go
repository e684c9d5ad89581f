package midi

import (
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/pkg/errors"
)

var ErrNoteRange = errors.New("midi note out of range")

// offset puts C4 at 60
const offset = 12

// gridBase is the MIDI number of the bottom-left pad on a grid (C3).
const gridBase = 48

func NoteNumber(n note.Note, octave int) int {
	return octave*12 + int(n) + offset
}

// FromNumber splits a MIDI number into pitch class and octave; 0 is C-1.
func FromNumber(num int) (note.Note, int, error) {
	if num < 0 || num > 127 {
		return note.None, 0, errors.Wrapf(ErrNoteRange, "%d", num)
	}
	adjusted := num - offset
	octave := adjusted / 12
	if adjusted < 0 {
		octave = -1
	}
	return note.At(adjusted), octave, nil
}

// PositionNumber estimates the pitch of a fretted note: the highest string
// sits in octave 4 and each lower string one octave down.
func PositionNumber(t instrument.Tuning, str int, fret int) (int, error) {
	if str < 0 || str >= len(t) || fret < 0 {
		return 0, errors.Wrapf(instrument.ErrOutOfRange, "string %d fret %d", str, fret)
	}
	open := t[str]
	if !open.Valid() {
		return 0, errors.Wrapf(instrument.ErrOutOfRange, "string %d has no open note", str)
	}
	base := 4 - (len(t) - 1 - str)
	octave := base + (int(open)+fret)/12
	return NoteNumber(note.Transpose(open, fret), octave), nil
}

// Number returns the MIDI key for p on layout.
func Number(layout instrument.Layout, p model.Position) (uint8, error) {
	var num int
	switch l := layout.(type) {
	case instrument.Fretboard:
		n, err := PositionNumber(l.Tuning, p.String, p.Fret)
		if err != nil {
			return 0, err
		}
		num = n
	case instrument.Grid:
		num = gridBase + p.String*l.RowStep + p.Fret*l.ColStep
	default:
		n, err := layout.NoteAt(p.String, p.Fret)
		if err != nil {
			return 0, err
		}
		num = NoteNumber(n, 4)
	}
	if num < 0 || num > 127 {
		return 0, errors.Wrapf(ErrNoteRange, "%d at string %d fret %d", num, p.String, p.Fret)
	}
	return uint8(num), nil
}
