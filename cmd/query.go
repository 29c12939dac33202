package cmd

import (
	"encoding/json"

	"foodfunk/feature/properties"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var queryCmd = &cobra.Command{
	Use:   "query <table> <key>",
	Short: "Resolve one key against a property table",
	Long: `Loads the configured sources and resolves a raw key such as
"minecraft:fish@1" the way the server does, printing the result as JSON.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, store := connectOptional(cfg, logg)
		tbls := buildTables(cfg, logg, tableDeps{db: db, store: store})
		svc := properties.NewService(logg, tbls.bindings()...)
		if err := svc.ReloadAll(cmd.Context()); err != nil {
			return err
		}

		res, err := svc.ResolveKey(args[0], args[1])
		if err != nil {
			return err
		}
		logg.Debug("Resolved key", zap.String("table", res.Table), zap.Strings("candidates", res.Candidates))

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	RootCmd.AddCommand(queryCmd)
}
