package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/triad"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var strategyName string

func init() {
	triadsCmd.Flags().StringVar(&strategyName, "strategy", "", "connected, close-voicing, spread or string-sets (default all)")
	rootCmd.AddCommand(triadsCmd)
	rootCmd.AddCommand(diadsCmd)
}

var triadsCmd = &cobra.Command{
	Use:   "triads <key> <scale> <degree>",
	Short: "Finds voicings of a diatonic triad",
	Long:  `Finds voicings of the triad built on a scale degree, e.g. fretdex triads C "Major (Ionian)" 2`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		layout, err := flagLayout()
		cobra.CheckErr(err)
		degree, err := strconv.Atoi(args[2])
		cobra.CheckErr(err)
		cobra.CheckErr(runTriads(cmd.OutOrStdout(), args[0], args[1], degree, strategyName, layout))
	},
}

var diadsCmd = &cobra.Command{
	Use:   "diads <lower> <upper>",
	Short: "Finds two-note shapes",
	Long:  `Finds the upper note one or two strings above each lower note, within five frets`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		layout, err := flagLayout()
		cobra.CheckErr(err)
		cobra.CheckErr(runDiads(cmd.OutOrStdout(), args[0], args[1], layout))
	},
}

var errBadDegree = errors.New("degree out of range")

func diatonicTriad(key string, name string, degree int) (chord.Triad, error) {
	root, _, err := lookupScale(key, name)
	if err != nil {
		return chord.Triad{}, err
	}
	triads := chord.Triads(root, name)
	if degree < 1 || degree > len(triads) {
		return chord.Triad{}, errors.Wrapf(errBadDegree, "%d of %d", degree, len(triads))
	}
	return triads[degree-1], nil
}

// findVoicings runs one strategy, or every strategy when name is empty.
func findVoicings(t chord.Triad, name string, layout instrument.Layout) (map[string][]model.Voicing, error) {
	res := make(map[string][]model.Voicing)
	if name == "" {
		for s, v := range triad.All(t, layout) {
			res[string(s)] = v
		}
		return res, nil
	}
	s, err := triad.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	v, err := triad.Find(t, layout, s)
	if err != nil {
		return nil, err
	}
	res[string(s)] = v
	return res, nil
}

func runTriads(w io.Writer, key string, name string, degree int, strategy string, layout instrument.Layout) error {
	t, err := diatonicTriad(key, name, degree)
	if err != nil {
		return err
	}
	voicings, err := findVoicings(t, strategy, layout)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (degree %d)\n", t.Name(), t.Degree)
	for _, s := range triad.Strategies() {
		v, ok := voicings[string(s)]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s: %d\n", s, len(v))
		for _, voicing := range v {
			fmt.Fprintf(w, "  %d/%d %d/%d %d/%d\n",
				voicing.Root.String, voicing.Root.Fret,
				voicing.Third.String, voicing.Third.Fret,
				voicing.Fifth.String, voicing.Fifth.Fret)
		}
	}
	return nil
}

func runDiads(w io.Writer, lowerName string, upperName string, layout instrument.Layout) error {
	lower, err := note.Parse(lowerName)
	if err != nil {
		return err
	}
	upper, err := note.Parse(upperName)
	if err != nil {
		return err
	}
	for _, d := range triad.Diads(lower, upper, layout) {
		fmt.Fprintf(w, "%s@%d/%d %s@%d/%d\n", d.Lower.Note, d.Lower.String, d.Lower.Fret, d.Upper.Note, d.Upper.String, d.Upper.Fret)
	}
	return nil
}
