package main

import (
	"fmt"
	"os"

	"github.com/platinummonkey/aminoapi/pkg/catalog"
	"github.com/platinummonkey/aminoapi/pkg/observability"
	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Print one amino acid",
		Example: `  aminoapi lookup alanine
  aminoapi lookup "Aspartic Acid" --dataset ./amino_acids.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("dataset")

			cat, err := catalog.New(catalog.Source{Path: path},
				catalog.WithLogger(observability.NewLogger(observability.ErrorLevel, cmd.ErrOrStderr())),
			)
			if err != nil {
				return err
			}

			aa, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("amino acid %q not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), aa.String())
			return nil
		},
	}

	cmd.Flags().String("dataset", os.Getenv("AMINO_DATASET_PATH"), "Dataset file; empty uses the embedded dataset")
	return cmd
}
