// =============================================================================
// Sales Analytics System - Aggregation Engine
// =============================================================================
//
// This package computes the descriptive aggregate statistics over the
// validated, filtered transaction set:
//
//   - Total revenue                  (revenue.go)
//   - Region-wise sales breakdown    (regions.go)
//   - Top-selling / low-performing products (products.go)
//   - Customer purchase analysis     (customers.go)
//   - Date trend and peak-day detection (dates.go)
//
// Every aggregation reads the record slice it is given and nothing else; no
// aggregation mutates a record. The input is assumed to have passed
// validation already (Amount attached), so no validation is re-performed
// here. The one stateful piece is DateAnalyzer, which memoizes its own date
// grouping for reuse between the trend accessor and the peak-day finder.
//
// ORDERING:
//   All descending/ascending orderings use stable sorts so that ties retain
//   the encounter order of first occurrence in the input.
//
// =============================================================================

package analytics

import "math"

// round2 rounds to two decimal places, the precision used for every
// monetary figure in the reports.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
