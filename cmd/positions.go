package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/position"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(positionsCmd)
}

var positionsCmd = &cobra.Command{
	Use:   "positions <note>...",
	Short: "Lists where notes sound on the board",
	Long:  `Lists every string/fret (or row/column) that sounds one of the given notes`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		layout, err := flagLayout()
		cobra.CheckErr(err)
		cobra.CheckErr(runPositions(cmd.OutOrStdout(), args, layout))
	},
}

func findPositions(names []string, layout instrument.Layout) ([]model.Position, error) {
	notes := make([]note.Note, 0, len(names))
	for _, name := range names {
		n, err := note.Parse(name)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return position.FindAll(notes, layout), nil
}

func runPositions(w io.Writer, names []string, layout instrument.Layout) error {
	positions, err := findPositions(names, layout)
	if err != nil {
		return err
	}
	for _, p := range positions {
		fmt.Fprintf(w, "%-2s %d/%d\n", p.Note, p.String, p.Fret)
	}
	fmt.Fprintf(w, "%d positions\n", len(positions))
	return nil
}
