package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "axdump",
	Short:        "Tools for accessibility-tree dump fixtures",
	SilenceUsage: true,
}

// Execute runs the CLI and exits non-zero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
