// =============================================================================
// Sales Analytics System - Transaction Enrichment
// =============================================================================
//
// This module annotates transactions with catalog metadata. The catalog keys
// products by integer ID while sales records carry string product IDs such
// as "P101"; the digits are extracted to form the lookup key (P101 -> 101).
//
// Extraction and lookup failures degrade to an unmatched annotation; they
// never fail the pipeline.
//
// =============================================================================

package enrichment

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

// BuildProductIndex maps catalog products by their integer ID. Entries
// without a usable ID are skipped.
func BuildProductIndex(products []CatalogProduct) map[int]CatalogProduct {
	index := make(map[int]CatalogProduct, len(products))
	for _, product := range products {
		if product.ID <= 0 {
			continue
		}
		index[product.ID] = product
	}
	return index
}

// ExtractNumericID extracts the numeric part of a product ID ("P101" -> 101).
// It returns an error when the ID contains no digits or the digits do not
// form a valid integer.
func ExtractNumericID(productID string) (int, error) {
	digits := make([]rune, 0, len(productID))
	for _, r := range productID {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}

	if len(digits) == 0 {
		return 0, fmt.Errorf("product ID %q contains no digits", productID)
	}

	id, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, fmt.Errorf("product ID %q: %w", productID, err)
	}

	return id, nil
}

// Enrich annotates every transaction with catalog metadata. Records whose
// product ID cannot be extracted or is absent from the index come back with
// Matched=false and zero-valued annotations. Output order matches input.
func Enrich(records []types.Transaction, index map[int]CatalogProduct) []types.EnrichedTransaction {
	enriched := make([]types.EnrichedTransaction, 0, len(records))

	for _, record := range records {
		item := types.EnrichedTransaction{Transaction: record}

		if numericID, err := ExtractNumericID(record.ProductID); err == nil {
			if product, ok := index[numericID]; ok {
				item.Category = product.Category
				item.Brand = product.Brand
				item.Rating = product.Rating
				item.Matched = true
			}
		}

		enriched = append(enriched, item)
	}

	return enriched
}

// MatchCount returns the number of enriched records with a catalog match.
func MatchCount(records []types.EnrichedTransaction) int {
	count := 0
	for _, record := range records {
		if record.Matched {
			count++
		}
	}
	return count
}
