// =============================================================================
// Sales Analytics System - Validate Command
// =============================================================================
//
// This file implements the 'validate' command, a dry run that checks the
// configuration and the input data without writing any reports.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/config"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/salesfile"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/validation"
)

// validateInput optionally overrides the configured input file.
var validateInput string

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and input data without generating reports",
	Long: `Validate loads the configuration, reads and parses the input file, and
runs the record validation pass. It prints the resulting counts and the
observed regions and amount range, but writes no reports and does not
archive the input. Use it to check a data file before a full analysis.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input sales data file (overrides config)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	setupLogging(cfg.SlogLevel())

	inputFile := cfg.InputFile
	if validateInput != "" {
		inputFile = validateInput
	}

	fmt.Println("=== Configuration ===")
	fmt.Printf("Input File:   %s\n", inputFile)
	fmt.Printf("Output Dir:   %s\n", cfg.OutputDir)
	fmt.Printf("Archive Dir:  %s\n", cfg.ArchiveDir)
	fmt.Printf("Top Products: %d\n", cfg.Analysis.TopProducts)
	fmt.Printf("Low Quantity Threshold: %d\n", cfg.Analysis.LowQuantityThreshold)
	if cfg.Catalog.Disabled {
		fmt.Println("Catalog:      disabled")
	} else {
		fmt.Printf("Catalog:      %s (limit %d)\n", cfg.Catalog.BaseURL, cfg.Catalog.Limit)
	}

	lines, err := salesfile.ReadSalesLines(inputFile)
	if err != nil {
		return fmt.Errorf("reading sales data: %w", err)
	}

	parsed := salesfile.ParseLines(lines)
	result := validation.ValidateAndFilter(parsed.Records, validation.FilterOptions{})

	fmt.Println("\n=== Input Data ===")
	fmt.Printf("Data Lines:     %d\n", len(lines))
	fmt.Printf("Parsed Records: %d\n", len(parsed.Records))
	fmt.Printf("Dropped Lines:  %d\n", parsed.Dropped)
	fmt.Printf("Valid Records:  %d\n", result.Summary.FinalCount)
	fmt.Printf("Invalid:        %d\n", result.Summary.Invalid)

	overview := result.Overview
	if len(overview.Regions) > 0 {
		fmt.Printf("Regions:        %v\n", overview.Regions)
	}
	if overview.HasAmounts {
		fmt.Printf("Amount Range:   %.2f - %.2f\n", overview.MinAmount, overview.MaxAmount)
	}

	fmt.Println("\n✓ Validation complete")
	return nil
}
