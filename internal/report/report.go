// =============================================================================
// Sales Analytics System - Report Rendering
// =============================================================================
//
// This package renders the computed analysis into output documents. Two
// renderers consume the same Data structure verbatim:
//   - text.go : formatted plain-text report
//   - xlsx.go : XLSX workbook with one sheet per analysis section
//
// Renderers never recompute anything; they format what the aggregation
// engine produced. Write failures (missing directory, permissions) are
// returned to the caller and must not crash the pipeline.
//
// =============================================================================

package report

import (
	"time"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/analytics"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/validation"
)

// Data carries every figure the renderers present.
type Data struct {
	// GeneratedAt is the report creation time.
	GeneratedAt time.Time

	// SourceFile is the analyzed input file.
	SourceFile string

	// ParseDropped is the number of lines discarded at parse time.
	ParseDropped int

	// Summary and Overview come from the validation pass.
	Summary  validation.Summary
	Overview validation.Overview

	// Aggregation outputs.
	TotalRevenue float64
	Regions      []analytics.RegionStat
	TopProducts  []analytics.ProductStat
	LowProducts  []analytics.ProductStat
	Customers    []analytics.CustomerStat
	DailyTrend   []analytics.DailyStat

	// Peak is nil when the filtered data set is empty.
	Peak *analytics.PeakDay

	// Enrichment summary. EnrichmentRan is false when the catalog fetch
	// was skipped or failed.
	EnrichmentRan bool
	EnrichedCount int
	MatchedCount  int
}
