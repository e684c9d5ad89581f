package interval

import (
	"fmt"

	"github.com/jsphweid/fretdex/note"
)

var names = map[int]string{
	0:  "Root",
	1:  "Minor 2nd",
	2:  "Major 2nd",
	3:  "Minor 3rd",
	4:  "Major 3rd",
	5:  "Perfect 4th",
	6:  "Tritone",
	7:  "Perfect 5th",
	8:  "Minor 6th",
	9:  "Major 6th",
	10: "Minor 7th",
	11: "Major 7th",
}

// coarse families used for highlighting, indexed by semitones
var classes = [12]string{"root", "2nd", "2nd", "3rd", "3rd", "4th", "tritone", "5th", "6th", "6th", "7th", "7th"}

// Between returns the ascending distance from root to target in [0, 11].
func Between(root note.Note, target note.Note) int {
	return (int(target) - int(root) + 12) % 12
}

func Name(i int) string {
	if n, ok := names[i]; ok {
		return n
	}
	return fmt.Sprintf("Interval %d", i)
}

// Class returns "" for anything outside [0, 11].
func Class(i int) string {
	if i < 0 || i >= len(classes) {
		return ""
	}
	return classes[i]
}
