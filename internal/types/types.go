// =============================================================================
// Sales Analytics System - Shared Types
// =============================================================================
//
// This package contains shared record types used across multiple modules to
// avoid import cycles. Types defined here are used by:
//   - salesfile
//   - validation
//   - analytics
//   - enrichment
//   - report
//
// =============================================================================

package types

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// Transaction represents a single parsed sales record.
//
// A record is created once by the parser, annotated exactly once by the
// validator (Amount), and is read-only for every downstream aggregation.
type Transaction struct {
	// TransactionID is the unique transaction identifier. Valid IDs start
	// with "T".
	TransactionID string

	// Date is the transaction date in ISO form (YYYY-MM-DD). It is treated
	// as an opaque sortable string; lexicographic order coincides with
	// chronological order, so no calendar parsing is performed.
	Date string

	// ProductID is the product identifier. Valid IDs start with "P".
	ProductID string

	// ProductName is the cleaned product name (commas replaced by spaces).
	ProductName string

	// Quantity is the number of units sold. Valid quantities are > 0.
	Quantity int

	// UnitPrice is the per-unit price. Valid prices are > 0.
	UnitPrice float64

	// CustomerID is the customer identifier. Valid IDs start with "C".
	CustomerID string

	// Region is the sales region name.
	Region string

	// Amount is the derived transaction amount (Quantity x UnitPrice).
	// It is computed during validation and reused by all aggregations;
	// it is zero on records that have not passed validation yet.
	Amount float64
}

// =============================================================================
// ENRICHED TRANSACTION
// =============================================================================

// EnrichedTransaction is a Transaction annotated with product catalog
// metadata from the external catalog API.
type EnrichedTransaction struct {
	Transaction

	// Category is the catalog category of the matched product.
	Category string

	// Brand is the catalog brand of the matched product ("N/A" when the
	// catalog has no brand for the product).
	Brand string

	// Rating is the catalog rating of the matched product.
	Rating float64

	// Matched reports whether a catalog entry was found for the record's
	// ProductID. When false the annotation fields hold zero values.
	Matched bool
}
