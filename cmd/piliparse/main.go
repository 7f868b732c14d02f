// Package main provides the CLI entry point for piliparse.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ia-satma/pili-sub002/pkg/ingest"
)

var (
	outputPath string
	pretty     bool
	versionID  int
	monthFirst bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "piliparse [input.xlsx]",
		Short: "Normalize an initiative workbook into canonical records",
		Long: `piliparse ingests an uploaded initiative workbook, maps its
bilingual headers to canonical fields, coerces dates, percentages and
combined status / next-steps cells, and outputs the resulting records,
errors and counts as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&versionID, "version-id", 0, "Upload version identifier to tag records with")
	rootCmd.Flags().BoolVar(&monthFirst, "month-first", false, "Read ambiguous dates as m/d/y instead of d/m/y")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	opts := ingest.DefaultOptions()
	opts.MonthFirst = monthFirst

	result, err := ingest.Parse(data, versionID, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	out = append(out, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d records, %d errors)\n",
		outputPath, len(result.Records), len(result.Errors))
	return nil
}
