package scale

import (
	"github.com/jsphweid/fretdex/note"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrUnknownScale = errors.New("unknown scale")

type Definition struct {
	Name      string
	Intervals []int
}

// definitions keeps the display order: modes, pentatonics, blues, jazz,
// exotic, asian, symmetric/bebop.
var definitions = []Definition{
	{"Major (Ionian)", []int{0, 2, 4, 5, 7, 9, 11}},
	{"Dorian", []int{0, 2, 3, 5, 7, 9, 10}},
	{"Phrygian", []int{0, 1, 3, 5, 7, 8, 10}},
	{"Lydian", []int{0, 2, 4, 6, 7, 9, 11}},
	{"Mixolydian", []int{0, 2, 4, 5, 7, 9, 10}},
	{"Aeolian (Natural Minor)", []int{0, 2, 3, 5, 7, 8, 10}},
	{"Locrian", []int{0, 1, 3, 5, 6, 8, 10}},

	{"Pentatonic Major", []int{0, 2, 4, 7, 9}},
	{"Pentatonic Minor", []int{0, 3, 5, 7, 10}},

	{"Blues Major", []int{0, 2, 3, 4, 7, 9}},
	{"Blues Minor", []int{0, 3, 5, 6, 7, 10}},

	{"Barry Harris (6th Diminished)", []int{0, 2, 3, 5, 6, 7, 9, 10, 11}},
	{"Melodic Minor", []int{0, 2, 3, 5, 7, 9, 11}},
	{"Harmonic Minor", []int{0, 2, 3, 5, 7, 8, 11}},
	{"Dorian b2", []int{0, 1, 3, 5, 7, 9, 10}},
	{"Lydian Dominant", []int{0, 2, 4, 6, 7, 9, 10}},
	{"Altered (Super Locrian)", []int{0, 1, 3, 4, 6, 8, 10}},

	{"Hungarian Minor", []int{0, 2, 3, 6, 7, 8, 11}},
	{"Persian", []int{0, 1, 4, 5, 6, 8, 11}},
	{"Hijaz", []int{0, 1, 4, 5, 7, 8, 10}},
	{"Phrygian Dominant", []int{0, 1, 4, 5, 7, 8, 10}},
	{"Double Harmonic", []int{0, 1, 4, 5, 7, 8, 11}},
	{"Hirajoshi", []int{0, 2, 3, 7, 8}},
	{"In Sen", []int{0, 1, 5, 7, 10}},

	{"Kumoi", []int{0, 2, 3, 7, 9}},
	{"Pelog", []int{0, 1, 3, 7, 8}},
	{"Slendro", []int{0, 2, 5, 7, 9}},

	{"Whole Tone", []int{0, 2, 4, 6, 8, 10}},
	{"Diminished (Half-Whole)", []int{0, 1, 3, 4, 6, 7, 9, 10}},
	{"Diminished (Whole-Half)", []int{0, 2, 3, 5, 6, 8, 9, 11}},
	{"Chromatic", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	{"Major Bebop", []int{0, 2, 4, 5, 7, 8, 9, 11}},
	{"Minor Bebop", []int{0, 2, 3, 5, 7, 8, 9, 10}},
}

func find(name string) (Definition, bool) {
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

func Names() []string {
	res := make([]string, 0, len(definitions))
	for _, d := range definitions {
		res = append(res, d.Name)
	}
	return res
}

func Intervals(name string) ([]int, bool) {
	d, ok := find(name)
	if !ok {
		return nil, false
	}
	return append([]int(nil), d.Intervals...), true
}

func Lookup(root note.Note, name string) ([]note.Note, error) {
	if !root.Valid() {
		return nil, errors.Wrapf(note.ErrUnknownNote, "root %v", int(root))
	}
	d, ok := find(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScale, "%q", name)
	}
	res := make([]note.Note, 0, len(d.Intervals))
	for _, i := range d.Intervals {
		res = append(res, note.Transpose(root, i))
	}
	return res, nil
}

// Notes is Lookup without the error; nil means the root or name was bad.
func Notes(root note.Note, name string) []note.Note {
	res, err := Lookup(root, name)
	if err != nil {
		return nil
	}
	return res
}

func NotesByName(rootName string, scaleName string) []note.Note {
	root, err := note.Parse(rootName)
	if err != nil {
		return nil
	}
	return Notes(root, scaleName)
}

// Degree is 1-based; 0 means n is not in the scale.
func Degree(n note.Note, root note.Note, name string) int {
	return slices.Index(Notes(root, name), n) + 1
}

func Contains(n note.Note, root note.Note, name string) bool {
	return slices.Contains(Notes(root, name), n)
}
