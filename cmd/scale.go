package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/spf13/cobra"
)

var circleFlag bool

func init() {
	scalesCmd.Flags().BoolVar(&circleFlag, "circle", false, "print the circles of fifths and fourths instead")
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(scalesCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <key> <scale>",
	Short: "Lists the notes of a scale",
	Long:  `Lists the notes of a scale, e.g. fretdex scale A "Aeolian (Natural Minor)"`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runScale(cmd.OutOrStdout(), args[0], args[1]))
	},
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Lists every known scale",
	Long:  `Lists every known scale with its semitone offsets`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if circleFlag {
			runCircle(cmd.OutOrStdout())
			return
		}
		runScales(cmd.OutOrStdout())
	},
}

func lookupScale(key string, name string) (note.Note, []note.Note, error) {
	root, err := note.Parse(key)
	if err != nil {
		return note.None, nil, err
	}
	notes, err := scale.Lookup(root, name)
	return root, notes, err
}

func runScale(w io.Writer, key string, name string) error {
	_, notes, err := lookupScale(key, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s: %s\n", key, name, strings.Join(note.Strings(notes), " "))
	return nil
}

func runScales(w io.Writer) {
	for _, name := range scale.Names() {
		intervals, _ := scale.Intervals(name)
		fmt.Fprintf(w, "%-32s %v\n", name, intervals)
	}
}

func runCircle(w io.Writer) {
	fmt.Fprintf(w, "fifths:  %s\n", strings.Join(note.Strings(note.CircleOfFifths()), " "))
	fmt.Fprintf(w, "fourths: %s\n", strings.Join(note.Strings(note.CircleOfFourths()), " "))
}
