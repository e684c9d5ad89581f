package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	description string
	save        bool
)

func init() {
	addInstrumentCmd.Flags().StringVar(&description, "description", "", "shown next to the name")
	addInstrumentCmd.Flags().BoolVar(&save, "save", false, "write the custom set back to the catalog file and DynamoDB")
	instrumentsCmd.AddCommand(addInstrumentCmd)
	rootCmd.AddCommand(instrumentsCmd)
}

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "Lists instruments and grids",
	Long:  `Lists preset and custom instruments and grid layouts. Custom instruments come from the catalog file and DynamoDB when configured.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		LoadDynamo(cmd.Context())
		runInstruments(cmd.OutOrStdout())
	},
}

var addInstrumentCmd = &cobra.Command{
	Use:   "add <name> <tuning>",
	Short: "Adds a custom instrument",
	Long:  `Adds a custom instrument from a comma separated tuning, lowest string first, e.g. fretdex instruments add "Open G" D,G,D,G,B,D`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		LoadDynamo(cmd.Context())
		inst, err := registry.AddCustom(args[0], splitList(args[1]), description)
		cobra.CheckErr(err)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", inst.Name, inst.Tuning)
		if save {
			cobra.CheckErr(saveCustom(cmd.Context(), inst))
		}
	},
}

func instrumentList() []model.InstrumentResponse {
	var res []model.InstrumentResponse
	for _, inst := range registry.Instruments() {
		res = append(res, model.InstrumentResponse{
			Name:        inst.Name,
			Tuning:      inst.Tuning.Names(),
			Description: inst.Description,
			Custom:      inst.Custom,
		})
	}
	for _, name := range registry.GridNames() {
		g, err := registry.Grid(name)
		if err != nil {
			continue
		}
		res = append(res, model.InstrumentResponse{Name: g.Name, Grid: true, Rows: g.Rows, Cols: g.Cols})
	}
	return res
}

func runInstruments(w io.Writer) {
	for _, inst := range instrumentList() {
		switch {
		case inst.Grid:
			fmt.Fprintf(w, "%-24s grid %dx%d\n", inst.Name, inst.Rows, inst.Cols)
		case inst.Custom:
			fmt.Fprintf(w, "%-24s %s (custom)\n", inst.Name, strings.Join(inst.Tuning, " "))
		default:
			fmt.Fprintf(w, "%-24s %s\n", inst.Name, strings.Join(inst.Tuning, " "))
		}
	}
}

func dynamoStore() (*instrument.DynamoStore, error) {
	endpoint := constants.GetDynamoEndpoint()
	if endpoint == "" {
		return nil, nil
	}
	return instrument.DialDynamo(endpoint, constants.GetDynamoRegion(), constants.GetDynamoTable())
}

// LoadDynamo replaces the custom instruments with the DynamoDB table when an
// endpoint is configured. Failures are logged.
func LoadDynamo(ctx context.Context) {
	store, err := dynamoStore()
	if err != nil {
		logger.Warn("dynamo unavailable", zap.Error(err))
		return
	}
	if store == nil {
		return
	}
	n, err := store.Load(ctx, registry)
	if err != nil {
		logger.Warn("dynamo load failed", zap.Error(err))
		return
	}
	logger.Debug("dynamo instruments loaded", zap.Int("count", n))
}

func saveCustom(ctx context.Context, inst instrument.Instrument) error {
	if path := constants.GetCatalogPath(); path != "" {
		if err := registry.Catalog().SaveFile(path); err != nil {
			return err
		}
		logger.Info("catalog saved", zap.String("path", path))
	}
	store, err := dynamoStore()
	if err != nil || store == nil {
		return err
	}
	return store.Put(ctx, inst.Spec())
}
