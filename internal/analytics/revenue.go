package analytics

import (
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

// TotalRevenue sums the transaction amounts of all records, rounded to two
// decimal places. Empty input yields 0.0.
func TotalRevenue(records []types.Transaction) float64 {
	total := 0.0
	for _, record := range records {
		total += record.Amount
	}
	return round2(total)
}
