// =============================================================================
// Sales Analytics System - Record Parser
// =============================================================================
//
// This module turns raw pipe-delimited lines into typed Transaction records.
//
// INPUT FORMAT (8 fields per line):
//   TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
//
// PARSING RULES:
//   - A line that does not split into exactly 8 fields is discarded.
//   - All string fields are whitespace-trimmed.
//   - Commas in ProductName are replaced with spaces, then trimmed.
//   - Quantity and UnitPrice have thousands-separator commas stripped before
//     numeric conversion; a failed conversion discards the line.
//
// Discarded lines never raise an error. They are counted in Dropped so the
// caller can surface the tally; parse-time drops are tracked separately from
// the validator's invalid count.
//
// =============================================================================

package salesfile

import (
	"strconv"
	"strings"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

// fieldCount is the exact number of pipe-delimited fields per record.
const fieldCount = 8

// ParseResult holds the outcome of parsing a batch of raw lines.
type ParseResult struct {
	// Records are the successfully parsed transactions, in input order.
	Records []types.Transaction

	// Dropped is the number of lines discarded during parsing (wrong field
	// count or unconvertible numeric field).
	Dropped int
}

// ParseLines parses raw data lines into Transaction records.
//
// Malformed lines are dropped silently and counted; the output preserves the
// input order of the surviving records.
func ParseLines(lines []string) ParseResult {
	result := ParseResult{
		Records: make([]types.Transaction, 0, len(lines)),
	}

	for _, line := range lines {
		parts := strings.Split(line, "|")
		if len(parts) != fieldCount {
			result.Dropped++
			continue
		}

		record, ok := parseRecord(parts)
		if !ok {
			result.Dropped++
			continue
		}

		result.Records = append(result.Records, record)
	}

	return result
}

// parseRecord converts one 8-field split into a Transaction.
// It reports false when a numeric field cannot be converted.
func parseRecord(parts []string) (types.Transaction, bool) {
	quantity, err := strconv.Atoi(cleanNumeric(parts[4]))
	if err != nil {
		return types.Transaction{}, false
	}

	unitPrice, err := strconv.ParseFloat(cleanNumeric(parts[5]), 64)
	if err != nil {
		return types.Transaction{}, false
	}

	return types.Transaction{
		TransactionID: strings.TrimSpace(parts[0]),
		Date:          strings.TrimSpace(parts[1]),
		ProductID:     strings.TrimSpace(parts[2]),
		ProductName:   cleanProductName(parts[3]),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    strings.TrimSpace(parts[6]),
		Region:        strings.TrimSpace(parts[7]),
	}, true
}

// cleanNumeric strips whitespace and thousands-separator commas from a raw
// numeric field.
func cleanNumeric(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
}

// cleanProductName replaces commas with spaces and trims the result. Commas
// would collide with downstream delimited exports.
func cleanProductName(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, ",", " "))
}
