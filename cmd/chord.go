package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/note"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var (
	seventhsFlag   bool
	containingFlag string
)

func init() {
	diatonicCmd.Flags().BoolVar(&seventhsFlag, "sevenths", false, "list seventh chords instead of triads")
	diatonicCmd.Flags().StringVar(&containingFlag, "containing", "", "only list chords containing this note")
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(diatonicCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <symbol>",
	Short: "Lists the notes of a chord symbol",
	Long:  `Lists the notes of a chord symbol such as Cm7 or F#maj9`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runChord(cmd.OutOrStdout(), args[0]))
	},
}

var diatonicCmd = &cobra.Command{
	Use:   "diatonic <key> <scale>",
	Short: "Lists the chords built on each scale degree",
	Long:  `Lists the triads (or, with --sevenths, the seventh chords) built on each degree of a scale`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runDiatonic(cmd.OutOrStdout(), args[0], args[1], seventhsFlag, containingFlag))
	},
}

func runChord(w io.Writer, symbol string) error {
	root, quality, err := chord.Parse(symbol)
	if err != nil {
		return err
	}
	notes := chord.Notes(root, quality)
	fmt.Fprintf(w, "%s: %s\n", chord.Name(root, quality), strings.Join(note.Strings(notes), " "))
	return nil
}

// diatonicChords builds the triads and sevenths of a scale. A non-empty
// containing keeps only the chords that include that note.
func diatonicChords(key string, name string, containing string) ([]chord.Triad, []chord.Seventh, error) {
	root, _, err := lookupScale(key, name)
	if err != nil {
		return nil, nil, err
	}
	triads := chord.Triads(root, name)
	all := chord.Sevenths(root, name)
	if containing == "" {
		return triads, all, nil
	}
	n, err := note.Parse(containing)
	if err != nil {
		return nil, nil, err
	}
	var sevenths []chord.Seventh
	for _, s := range all {
		if slices.Contains(s.Notes(), n) {
			sevenths = append(sevenths, s)
		}
	}
	return chord.Containing(n, triads), sevenths, nil
}

func runDiatonic(w io.Writer, key string, name string, withSevenths bool, containing string) error {
	triads, sevenths, err := diatonicChords(key, name, containing)
	if err != nil {
		return err
	}
	if withSevenths {
		for _, s := range sevenths {
			fmt.Fprintf(w, "%d %-8s %s\n", s.Degree, s.Name(), strings.Join(note.Strings(s.Notes()), " "))
		}
		return nil
	}
	for _, t := range triads {
		fmt.Fprintf(w, "%d %-8s %s\n", t.Degree, t.Name(), strings.Join(note.Strings(t.Notes()), " "))
	}
	return nil
}
