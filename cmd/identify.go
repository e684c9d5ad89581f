package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/note"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <file.mid>",
	Short: "Names the chords in a MIDI file",
	Long: `Groups the note-ons of a MIDI file by tick and names each group.
Inversions are written with the bass note after a slash, e.g. C/E.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runIdentify(cmd.OutOrStdout(), args[0]))
	},
}

// nameChord tries each pitch class of keys as the root, starting with the
// bass. keys must be sorted low to high.
func nameChord(keys []uint8) (string, []note.Note, error) {
	var notes []note.Note
	for _, k := range keys {
		n, _, err := midi.FromNumber(int(k))
		if err != nil {
			return "", nil, err
		}
		if !slices.Contains(notes, n) {
			notes = append(notes, n)
		}
	}
	for i := range notes {
		rotated := append(slices.Clone(notes[i:]), notes[:i]...)
		quality, ok := chord.Identify(rotated)
		if !ok {
			continue
		}
		name := chord.Name(rotated[0], quality)
		if i > 0 {
			name += "/" + notes[0].String()
		}
		return name, notes, nil
	}
	return "", notes, nil
}

func runIdentify(w io.Writer, path string) error {
	s, err := midi.ReadFile(path)
	if err != nil {
		return err
	}
	chords := midi.Chords(s)
	logger.Debug("midi read", zap.String("path", path), zap.Int("chords", len(chords)))
	for i, keys := range chords {
		name, notes, err := nameChord(keys)
		if err != nil {
			return err
		}
		if name == "" {
			name = "?"
		}
		fmt.Fprintf(w, "%d %-8s %v\n", i+1, name, note.Strings(notes))
	}
	return nil
}
