// aminoapi serves amino acid reference data over a read-only HTTP API.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "aminoapi",
		Short:        "Amino acid reference data API",
		Version:      Version + " (" + Commit + ")",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newServeCommand(),
		newLookupCommand(),
		newValidateCommand(),
	)
	return cmd
}
