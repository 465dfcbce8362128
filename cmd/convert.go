package cmd

import (
	"fmt"
	"os"

	"github.com/agentic-research/axdump/internal/convert"
	"github.com/agentic-research/axdump/internal/dump"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input.json> <output.json>",
	Short: "Convert a Chromium accessibility-tree dump into the normalized tree schema",
	Long: `Convert reads the JSON tree dump produced by a DumpAccessibilityTree test,
repairs the producer's percent-escaped bytes, translates every node into the
normalized node/attribute schema, and writes the result as an indented JSON
fixture. The output file name also seeds the tree's deterministic identity.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], args[1])
	},
}

// runConvert performs the whole pipeline in memory. The output file is only
// created after the full document is assembled and encoded, so a failed run
// never leaves a partial fixture behind.
func runConvert(inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	repaired, err := dump.Repair(raw)
	if err != nil {
		return fmt.Errorf("repair %s: %w", inputPath, err)
	}
	root, err := dump.Parse(repaired)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}
	update, err := convert.Assemble(root, outputPath)
	if err != nil {
		return fmt.Errorf("convert %s: %w", inputPath, err)
	}
	encoded, err := update.Encode()
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
