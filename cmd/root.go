package cmd

import (
	"context"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger   = zap.NewNop()
	registry = instrument.NewRegistry()

	debug          bool
	instrumentName string
	tuningFlag     string
	fretsFlag      int
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Scales, chords and triad voicings on fretboards and grids",
	Long: `fretdex maps scales, chords, CAGED shapes and triad voicings onto
stringed instruments and grid controllers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return errors.Wrap(err, "could not build logger")
		}
		logger = l
		LoadCatalog(constants.GetCatalogPath())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debug, "debug", false, "debug logging")
	flags.StringVar(&instrumentName, "instrument", constants.DefaultInstrument, "instrument or grid name")
	flags.StringVar(&tuningFlag, "tuning", "", "comma separated open string notes, lowest first (overrides --instrument)")
	flags.IntVar(&fretsFlag, "frets", constants.GetMaxFret(), "highest fret")
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

// LoadCatalog applies the YAML catalog at path to the registry. A missing or
// broken catalog is logged and skipped.
func LoadCatalog(path string) {
	if path == "" {
		return
	}
	c, err := instrument.LoadFile(path)
	if err == nil {
		err = registry.Apply(c)
	}
	if err != nil {
		logger.Warn("catalog not loaded", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Debug("catalog loaded", zap.String("path", path), zap.Int("instruments", len(c.Instruments)), zap.Int("grids", len(c.Grids)))
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

var errBoardTooLarge = errors.New("board too large")

func checkBoardSize(frets int, lines int) error {
	if frets > constants.MaxFrets {
		return errors.Wrapf(errBoardTooLarge, "%d frets, at most %d", frets, constants.MaxFrets)
	}
	if lines > constants.MaxStrings {
		return errors.Wrapf(errBoardTooLarge, "%d strings, at most %d", lines, constants.MaxStrings)
	}
	return nil
}

// resolveLayout turns a layout request into a board. An explicit tuning is
// parsed strictly so typos surface as errors here.
func resolveLayout(req model.LayoutRequest) (instrument.Layout, error) {
	frets := req.Frets
	if frets <= 0 {
		frets = constants.GetMaxFret()
	}
	if err := checkBoardSize(frets, len(req.Tuning)); err != nil {
		return nil, err
	}
	if len(req.Tuning) > 0 {
		t, err := instrument.ParseTuning(req.Tuning)
		if err != nil {
			return nil, err
		}
		return instrument.Fretboard{Tuning: t, Frets: frets}, nil
	}
	name := req.Instrument
	if name == "" {
		name = constants.DefaultInstrument
	}
	return registry.Layout(name, frets)
}

func flagLayout() (instrument.Layout, error) {
	return resolveLayout(model.LayoutRequest{
		Instrument: instrumentName,
		Tuning:     splitList(tuningFlag),
		Frets:      fretsFlag,
	})
}
