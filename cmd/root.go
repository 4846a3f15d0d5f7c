// =============================================================================
// Sales Analytics System - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// (analyze, validate, version) are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sales-analytics)
//   ├── analyzeCmd (sales-analytics analyze)
//   ├── validateCmd (sales-analytics validate)
//   └── versionCmd (sales-analytics version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// It can be overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sales-analytics",
	Short: "Sales Analytics System - analyze delimited sales transaction logs",
	Long: `Sales Analytics System is a batch CLI tool that ingests a pipe-delimited
sales transaction log, cleans and validates the records, computes aggregate
statistics (revenue, region breakdown, product and customer analysis, date
trends), optionally enriches records via an external product catalog, and
emits formatted text and XLSX reports.

Example Usage:
  sales-analytics analyze                          # Analyze the configured input file
  sales-analytics analyze --region North           # Restrict the analysis to one region
  sales-analytics analyze --min-amount 1000        # Apply an inclusive amount filter
  sales-analytics validate                         # Check configuration and input data`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs the process-wide structured logger. The --verbose
// flag wins over the configured level.
func setupLogging(level slog.Level) {
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
