package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/platinummonkey/aminoapi/pkg/aminoacid"
	"github.com/platinummonkey/aminoapi/pkg/dataset"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a dataset file without serving it",
		Example: `  aminoapi validate --dataset ./amino_acids.yaml
  aminoapi validate --dataset ./amino_acids.json --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("dataset")
			strict, _ := cmd.Flags().GetBool("strict")

			var (
				records []aminoacid.AminoAcid
				err     error
			)
			if path == "" {
				path = "embedded"
				records, err = dataset.Default()
			} else {
				records, err = dataset.Load(path)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d records\n", path, len(records))

			dups := dataset.Duplicates(records)
			if len(dups) == 0 {
				return nil
			}
			fmt.Fprintf(out, "duplicate names (first occurrence wins): %s\n", strings.Join(dups, ", "))
			if strict {
				return fmt.Errorf("%d duplicate names", len(dups))
			}
			return nil
		},
	}

	cmd.Flags().String("dataset", os.Getenv("AMINO_DATASET_PATH"), "Dataset file; empty validates the embedded dataset")
	cmd.Flags().Bool("strict", false, "Fail when the dataset contains duplicate names")
	return cmd
}
