package note

import (
	"github.com/pkg/errors"
)

var ErrUnknownNote = errors.New("unknown note")

// Note is a pitch class, 0 (C) through 11 (B). Only sharps are spelled.
type Note int8

const (
	C Note = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// None marks a spelling that could not be recognised.
const None Note = -1

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var circleOfFifths = []Note{C, G, D, A, E, B, FSharp, CSharp, GSharp, DSharp, ASharp, F}
var circleOfFourths = []Note{C, F, ASharp, DSharp, GSharp, CSharp, FSharp, B, E, A, D, G}

func At(index int) Note {
	return Note(((index % 12) + 12) % 12)
}

func IndexOf(name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrUnknownNote, "%q", name)
}

func Parse(name string) (Note, error) {
	i, err := IndexOf(name)
	if err != nil {
		return None, err
	}
	return Note(i), nil
}

func Transpose(n Note, semitones int) Note {
	if !n.Valid() {
		return None
	}
	return At(int(n) + semitones)
}

func (n Note) Valid() bool {
	return n >= C && n <= B
}

func (n Note) IsNatural() bool {
	return n.Valid() && len(names[n]) == 1
}

func (n Note) String() string {
	if !n.Valid() {
		return "?"
	}
	return names[n]
}

func All() []Note {
	res := make([]Note, 0, len(names))
	for i := range names {
		res = append(res, Note(i))
	}
	return res
}

func Names() []string {
	res := make([]string, len(names))
	copy(res, names[:])
	return res
}

func CircleOfFifths() []Note {
	return append([]Note(nil), circleOfFifths...)
}

func CircleOfFourths() []Note {
	return append([]Note(nil), circleOfFourths...)
}

// Strings converts notes to their spellings.
func Strings(notes []Note) []string {
	res := make([]string, 0, len(notes))
	for _, n := range notes {
		res = append(res, n.String())
	}
	return res
}

func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
