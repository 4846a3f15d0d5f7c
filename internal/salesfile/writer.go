// =============================================================================
// Sales Analytics System - Enriched Data Writer
// =============================================================================
//
// This module writes enriched transactions back to a pipe-delimited file so
// that downstream consumers of the legacy format can pick up the catalog
// annotations. The output carries the 8 base columns plus the 4 API columns.
//
// =============================================================================

package salesfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

// enrichedHeader is the column header of the enriched export.
var enrichedHeader = []string{
	"TransactionID", "Date", "ProductID", "ProductName",
	"Quantity", "UnitPrice", "CustomerID", "Region",
	"API_Category", "API_Brand", "API_Rating", "API_Match",
}

// WriteEnriched writes enriched transactions to a pipe-delimited file,
// creating the parent directory if necessary.
func WriteEnriched(path string, records []types.EnrichedTransaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create enriched data file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	if _, err := writer.WriteString(strings.Join(enrichedHeader, "|") + "\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.TransactionID,
			record.Date,
			record.ProductID,
			record.ProductName,
			strconv.Itoa(record.Quantity),
			strconv.FormatFloat(record.UnitPrice, 'f', -1, 64),
			record.CustomerID,
			record.Region,
			record.Category,
			record.Brand,
			formatRating(record),
			strconv.FormatBool(record.Matched),
		}

		if _, err := writer.WriteString(strings.Join(row, "|") + "\n"); err != nil {
			return fmt.Errorf("failed to write record %s: %w", record.TransactionID, err)
		}
	}

	return writer.Flush()
}

// formatRating renders the catalog rating, empty for unmatched records.
func formatRating(record types.EnrichedTransaction) string {
	if !record.Matched {
		return ""
	}
	return strconv.FormatFloat(record.Rating, 'f', -1, 64)
}
