// =============================================================================
// Sales Analytics System - Validation and Filtering Engine
// =============================================================================
//
// This module enforces the structural and business invariants of parsed
// transactions and applies the optional region and amount filters.
//
// VALIDATION RULES (a record is valid iff all of these hold):
//   - All eight required fields are present (non-empty).
//   - TransactionID starts with "T", ProductID with "P", CustomerID with "C".
//   - Quantity and UnitPrice are strictly positive.
//
// A failing record increments the invalid counter and is excluded; no partial
// correction is attempted. Records passing validation get their derived
// Amount (Quantity x UnitPrice) attached exactly once.
//
// FILTER ORDER:
//   The region filter always runs before the amount filter, so the
//   FilteredByAmount count is relative to the region-filtered set. Filters
//   only remove already-valid records; they never affect the invalid count.
//
// =============================================================================

package validation

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

// =============================================================================
// OPTIONS AND RESULT TYPES
// =============================================================================

// FilterOptions holds the optional post-validation filters.
type FilterOptions struct {
	// Region keeps only records whose Region matches exactly.
	// An empty string disables the filter.
	Region string

	// MinAmount keeps only records with Amount >= MinAmount (inclusive).
	// A nil pointer imposes no lower bound.
	MinAmount *float64

	// MaxAmount keeps only records with Amount <= MaxAmount (inclusive).
	// A nil pointer imposes no upper bound.
	MaxAmount *float64
}

// Summary reports the record counts of one validation-and-filter pass.
type Summary struct {
	// TotalInput is the number of parsed records handed to the validator.
	TotalInput int

	// Invalid is the number of records failing structural validation.
	Invalid int

	// FilteredByRegion is the number of valid records removed by the
	// region filter.
	FilteredByRegion int

	// FilteredByAmount is the number of records removed by the amount
	// filter, counted after the region filter was applied.
	FilteredByAmount int

	// FinalCount is the number of records surviving validation and both
	// filters.
	FinalCount int
}

// Overview describes the valid, pre-filter data set. It backs the
// "what filters are available" prompt in the CLI.
type Overview struct {
	// Regions is the sorted set of distinct regions observed across valid
	// records.
	Regions []string

	// MinAmount and MaxAmount bound the transaction amounts observed
	// across valid records. They are meaningful only when HasAmounts is
	// true.
	MinAmount float64
	MaxAmount float64

	// HasAmounts reports whether at least one valid record was seen.
	HasAmounts bool
}

// Result bundles the outcome of ValidateAndFilter.
type Result struct {
	// Valid is the filtered record sequence, in input order, with Amount
	// attached to every record.
	Valid []types.Transaction

	// Summary holds the record counts of the pass.
	Summary Summary

	// Overview describes the valid records before filtering.
	Overview Overview
}

// =============================================================================
// VALIDATION AND FILTERING
// =============================================================================

// ValidateAndFilter validates parsed transactions, attaches the derived
// Amount to every valid record, and applies the optional filters.
func ValidateAndFilter(records []types.Transaction, opts FilterOptions) Result {
	summary := Summary{TotalInput: len(records)}

	valid := make([]types.Transaction, 0, len(records))
	regionSet := make(map[string]struct{})
	overview := Overview{}

	for _, record := range records {
		if rule := checkRecord(record); rule != "" {
			summary.Invalid++
			slog.Debug("invalid transaction excluded",
				slog.String("transaction_id", record.TransactionID),
				slog.String("rule", rule))
			continue
		}

		// Attach the derived amount exactly once; every aggregation
		// reuses this field.
		record.Amount = float64(record.Quantity) * record.UnitPrice

		regionSet[record.Region] = struct{}{}
		if !overview.HasAmounts || record.Amount < overview.MinAmount {
			overview.MinAmount = record.Amount
		}
		if !overview.HasAmounts || record.Amount > overview.MaxAmount {
			overview.MaxAmount = record.Amount
		}
		overview.HasAmounts = true

		valid = append(valid, record)
	}

	overview.Regions = make([]string, 0, len(regionSet))
	for region := range regionSet {
		overview.Regions = append(overview.Regions, region)
	}
	sort.Strings(overview.Regions)

	// Region filter, always ahead of the amount filter.
	if opts.Region != "" {
		before := len(valid)
		valid = filterRecords(valid, func(t types.Transaction) bool {
			return t.Region == opts.Region
		})
		summary.FilteredByRegion = before - len(valid)
	}

	// Amount filter, inclusive on both ends independently.
	if opts.MinAmount != nil || opts.MaxAmount != nil {
		before := len(valid)
		valid = filterRecords(valid, func(t types.Transaction) bool {
			if opts.MinAmount != nil && t.Amount < *opts.MinAmount {
				return false
			}
			if opts.MaxAmount != nil && t.Amount > *opts.MaxAmount {
				return false
			}
			return true
		})
		summary.FilteredByAmount = before - len(valid)
	}

	summary.FinalCount = len(valid)

	return Result{Valid: valid, Summary: summary, Overview: overview}
}

// checkRecord validates a single record and returns the name of the first
// violated rule, or "" when the record is valid.
func checkRecord(record types.Transaction) string {
	// Required-field presence. Trivially true post-parse, re-checked
	// defensively.
	switch "" {
	case record.TransactionID, record.Date, record.ProductID,
		record.ProductName, record.CustomerID, record.Region:
		return "required_field"
	}

	if !strings.HasPrefix(record.TransactionID, "T") ||
		!strings.HasPrefix(record.ProductID, "P") ||
		!strings.HasPrefix(record.CustomerID, "C") {
		return "id_prefix"
	}

	if record.Quantity <= 0 || record.UnitPrice <= 0 {
		return "positive_numeric"
	}

	return ""
}

// filterRecords returns the records matching keep, preserving order.
func filterRecords(records []types.Transaction, keep func(types.Transaction) bool) []types.Transaction {
	filtered := make([]types.Transaction, 0, len(records))
	for _, record := range records {
		if keep(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// =============================================================================
// FILTER INPUT PARSING
// =============================================================================

// ParseAmountBound parses a user-supplied amount bound. An empty string means
// the bound is not set. A malformed value returns an error so the caller can
// disable the filter instead of aborting the run.
func ParseAmountBound(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	return &value, nil
}
