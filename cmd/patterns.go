package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pattern"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var threeNotesPerString bool

func init() {
	patternsCmd.Flags().BoolVar(&threeNotesPerString, "3nps", false, "three-notes-per-string boxes instead of CAGED shapes")
	rootCmd.AddCommand(patternsCmd)
}

var patternsCmd = &cobra.Command{
	Use:   "patterns <key> <scale>",
	Short: "Finds scale shapes",
	Long:  `Finds CAGED-style scale shapes (or 3nps boxes) starting from every root position`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		layout, err := flagLayout()
		cobra.CheckErr(err)
		cobra.CheckErr(runPatterns(cmd.OutOrStdout(), args[0], args[1], threeNotesPerString, layout))
	},
}

var errNeedsFretboard = errors.New("three notes per string needs a fretboard")

func findPatterns(key string, name string, nps bool, layout instrument.Layout) ([]model.Pattern, error) {
	root, notes, err := lookupScale(key, name)
	if err != nil {
		return nil, err
	}
	if !nps {
		return pattern.Shapes(notes, root, layout), nil
	}
	fb, ok := layout.(instrument.Fretboard)
	if !ok {
		return nil, errNeedsFretboard
	}
	return pattern.ThreeNotesPerString(notes, fb), nil
}

func runPatterns(w io.Writer, key string, name string, nps bool, layout instrument.Layout) error {
	patterns, err := findPatterns(key, name, nps, layout)
	if err != nil {
		return err
	}
	for i, p := range patterns {
		fmt.Fprintf(w, "%d:", i+1)
		for _, pos := range p {
			fmt.Fprintf(w, " %s@%d/%d", pos.Note, pos.String, pos.Fret)
		}
		fmt.Fprintln(w)
	}
	return nil
}
