// =============================================================================
// Sales Analytics System - Analyze Command
// =============================================================================
//
// This file implements the 'analyze' command, the main entry point for the
// analysis pipeline.
//
// PIPELINE STEPS:
//   1. Load configuration
//   2. Read the raw sales data lines (encoding fallback, header skipped)
//   3. Parse pipe-delimited lines into transactions
//   4. Validate records and apply the region/amount filters
//   5. Compute the aggregate statistics
//   6. Enrich transactions from the product catalog API (optional)
//   7. Write the text report, XLSX workbook, and enriched export
//   8. Archive the input file and write the run summary log
//
// Record-level problems never abort the run; they surface as counts. File
// and configuration errors abort with a concise message.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/analytics"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/config"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/enrichment"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/report"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/salesfile"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/validation"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	// analyzeInput overrides the configured input file.
	analyzeInput string

	// analyzeRegion restricts the analysis to a single region.
	analyzeRegion string

	// analyzeMinAmount / analyzeMaxAmount are the inclusive amount bounds,
	// passed as strings so a malformed value can disable the filter
	// instead of aborting the run.
	analyzeMinAmount string
	analyzeMaxAmount string

	// analyzeTop / analyzeThreshold override the configured aggregation
	// parameters. Negative means "use the configured value".
	analyzeTop       int
	analyzeThreshold int

	// analyzeSkipEnrichment disables the catalog enrichment step.
	analyzeSkipEnrichment bool

	// analyzeNoArchive leaves the input file in place after processing.
	analyzeNoArchive bool
)

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a sales transaction log and generate reports",
	Long: `Analyze a pipe-delimited sales transaction log: parse and validate the
records, apply optional region and amount filters, compute aggregate
statistics, enrich the records from the product catalog API, and write the
text report, XLSX workbook, and enriched data export.`,
	Example: `  sales-analytics analyze
  sales-analytics analyze --input data/sales_data.txt
  sales-analytics analyze --region North --min-amount 1000
  sales-analytics analyze --top 10 --threshold 5 --skip-enrichment`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Input sales data file (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeRegion, "region", "", "Only analyze transactions from this region")
	analyzeCmd.Flags().StringVar(&analyzeMinAmount, "min-amount", "", "Minimum transaction amount (inclusive)")
	analyzeCmd.Flags().StringVar(&analyzeMaxAmount, "max-amount", "", "Maximum transaction amount (inclusive)")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", -1, "Number of top-selling products to report")
	analyzeCmd.Flags().IntVar(&analyzeThreshold, "threshold", -1, "Low-performing product quantity threshold")
	analyzeCmd.Flags().BoolVar(&analyzeSkipEnrichment, "skip-enrichment", false, "Skip the product catalog enrichment step")
	analyzeCmd.Flags().BoolVar(&analyzeNoArchive, "no-archive", false, "Do not archive the input file after processing")
}

// =============================================================================
// PIPELINE
// =============================================================================

func runAnalyze(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	// Step 1: Configuration.
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	setupLogging(cfg.SlogLevel())

	inputFile := cfg.InputFile
	if analyzeInput != "" {
		inputFile = analyzeInput
	}

	topN := cfg.Analysis.TopProducts
	if analyzeTop >= 0 {
		topN = analyzeTop
	}
	lowThreshold := cfg.Analysis.LowQuantityThreshold
	if analyzeThreshold >= 0 {
		lowThreshold = analyzeThreshold
	}

	fm := utils.NewFileManager(cfg.OutputDir, cfg.ArchiveDir)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	fmt.Println("=== Sales Analytics System ===")
	fmt.Printf("Input: %s\n\n", inputFile)

	// Step 2: Read.
	lines, err := salesfile.ReadSalesLines(inputFile)
	if err != nil {
		return fmt.Errorf("reading sales data: %w", err)
	}
	slog.Info("read sales data", "file", inputFile, "data_lines", len(lines))

	// Step 3: Parse.
	parsed := salesfile.ParseLines(lines)
	fmt.Printf("Parsed %d records (%d malformed lines dropped)\n",
		len(parsed.Records), parsed.Dropped)

	// Step 4: Validate and filter.
	opts := validation.FilterOptions{Region: analyzeRegion}
	opts.MinAmount = parseAmountFlag("min-amount", analyzeMinAmount)
	opts.MaxAmount = parseAmountFlag("max-amount", analyzeMaxAmount)

	result := validation.ValidateAndFilter(parsed.Records, opts)
	printFilterSummary(result)

	// Step 5: Aggregations.
	records := result.Valid
	totalRevenue := analytics.TotalRevenue(records)
	regions := analytics.RegionSales(records)
	topProducts := analytics.TopSellingProducts(records, topN)
	lowProducts := analytics.LowPerformingProducts(records, lowThreshold)
	customers := analytics.CustomerAnalysis(records)

	analyzer := analytics.NewDateAnalyzer(records)
	trend := analyzer.DailyTrend()

	var peak *analytics.PeakDay
	if day, err := analyzer.FindPeakDay(); err == nil {
		peak = &day
	} else {
		slog.Warn("peak day unavailable", "error", err)
	}

	data := report.Data{
		GeneratedAt:  startTime,
		SourceFile:   inputFile,
		ParseDropped: parsed.Dropped,
		Summary:      result.Summary,
		Overview:     result.Overview,
		TotalRevenue: totalRevenue,
		Regions:      regions,
		TopProducts:  topProducts,
		LowProducts:  lowProducts,
		Customers:    customers,
		DailyTrend:   trend,
		Peak:         peak,
	}

	// Step 6: Enrichment.
	var reportFiles []string
	if enriched := runEnrichment(cmd, cfg, &data, records); enriched != "" {
		reportFiles = append(reportFiles, enriched)
	}

	// Step 7: Reports.
	baseName := utils.GenerateOutputFileName(cfg.ReportNameFormat, "")

	textPath := filepath.Join(cfg.OutputDir, baseName+".txt")
	if err := report.WriteText(textPath, data); err != nil {
		slog.Error("text report failed", "path", textPath, "error", err)
		fmt.Printf("  ✗ Text report: %v\n", err)
	} else {
		reportFiles = append(reportFiles, textPath)
		fmt.Printf("  ✓ Text report: %s\n", textPath)
	}

	xlsxPath := filepath.Join(cfg.OutputDir, baseName+".xlsx")
	if err := report.WriteXLSX(xlsxPath, data); err != nil {
		slog.Error("xlsx report failed", "path", xlsxPath, "error", err)
		fmt.Printf("  ✗ XLSX report: %v\n", err)
	} else {
		reportFiles = append(reportFiles, xlsxPath)
		fmt.Printf("  ✓ XLSX report: %s\n", xlsxPath)
	}

	// Step 8: Archive and summary log.
	var archivePath string
	if !analyzeNoArchive && len(reportFiles) > 0 {
		archivePath, err = fm.ArchiveInputFile(inputFile)
		if err != nil {
			slog.Warn("archiving failed", "file", inputFile, "error", err)
		} else {
			fmt.Printf("  ✓ Input archived: %s\n", archivePath)
		}
	}

	summaryPath, err := fm.WriteSummaryLog(utils.RunSummary{
		StartTime:        startTime,
		EndTime:          time.Now(),
		InputFile:        inputFile,
		RawLines:         len(lines),
		ParseDropped:     parsed.Dropped,
		InvalidRecords:   result.Summary.Invalid,
		FilteredByRegion: result.Summary.FilteredByRegion,
		FilteredByAmount: result.Summary.FilteredByAmount,
		AnalyzedRecords:  result.Summary.FinalCount,
		TotalRevenue:     totalRevenue,
		ReportFiles:      reportFiles,
		ArchivePath:      archivePath,
	})
	if err != nil {
		slog.Warn("summary log failed", "error", err)
	} else {
		fmt.Printf("  ✓ Run summary: %s\n", summaryPath)
	}

	fmt.Println("\n=== Analysis Complete ===")
	fmt.Printf("Total Revenue: %.2f across %d transactions\n",
		totalRevenue, result.Summary.FinalCount)
	fmt.Printf("Duration: %s\n", time.Since(startTime).Round(time.Millisecond))

	return nil
}

// parseAmountFlag converts an amount flag value into a filter bound. A
// malformed value disables that bound with a warning instead of aborting.
func parseAmountFlag(name, raw string) *float64 {
	bound, err := validation.ParseAmountBound(raw)
	if err != nil {
		slog.Warn("invalid amount filter value, filter disabled", "flag", name, "value", raw)
		fmt.Fprintf(os.Stderr, "Warning: invalid --%s value %q, filter disabled\n", name, raw)
		return nil
	}
	return bound
}

// printFilterSummary prints the validation counts and the overview of the
// valid data set (available regions, observed amount range).
func printFilterSummary(result validation.Result) {
	summary := result.Summary
	fmt.Printf("Valid: %d  Invalid: %d  Filtered by region: %d  Filtered by amount: %d\n",
		summary.TotalInput-summary.Invalid, summary.Invalid,
		summary.FilteredByRegion, summary.FilteredByAmount)

	overview := result.Overview
	if len(overview.Regions) > 0 {
		fmt.Printf("Regions: %v\n", overview.Regions)
	}
	if overview.HasAmounts {
		fmt.Printf("Amount range: %.2f - %.2f\n", overview.MinAmount, overview.MaxAmount)
	}
	fmt.Printf("Analyzing %d transactions\n\n", summary.FinalCount)
}

// runEnrichment fetches the product catalog, annotates the records, and
// writes the enriched export. Any failure degrades to a skipped enrichment.
// It returns the enriched file path, or "" when enrichment did not run.
func runEnrichment(cmd *cobra.Command, cfg *config.Config, data *report.Data, records []types.Transaction) string {
	if analyzeSkipEnrichment || cfg.Catalog.Disabled {
		slog.Info("catalog enrichment skipped")
		return ""
	}

	client := enrichment.NewClient(
		cfg.Catalog.BaseURL,
		cfg.Catalog.Limit,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
	)

	products, err := client.FetchProducts(cmd.Context())
	if err != nil {
		slog.Warn("catalog fetch failed, enrichment skipped", "error", err)
		fmt.Printf("  ✗ Enrichment skipped: %v\n", err)
		return ""
	}

	index := enrichment.BuildProductIndex(products)
	enriched := enrichment.Enrich(records, index)

	data.EnrichmentRan = true
	data.EnrichedCount = len(enriched)
	data.MatchedCount = enrichment.MatchCount(enriched)
	fmt.Printf("Enriched %d transactions (%d matched to catalog)\n",
		data.EnrichedCount, data.MatchedCount)

	enrichedPath := filepath.Join(cfg.OutputDir, cfg.EnrichedFileName)
	if err := salesfile.WriteEnriched(enrichedPath, enriched); err != nil {
		slog.Error("enriched export failed", "path", enrichedPath, "error", err)
		fmt.Printf("  ✗ Enriched export: %v\n", err)
		return ""
	}

	fmt.Printf("  ✓ Enriched export: %s\n", enrichedPath)
	return enrichedPath
}
