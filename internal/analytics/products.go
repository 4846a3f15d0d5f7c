package analytics

import (
	"sort"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

// Documented defaults for the product aggregations. Callers pass these
// explicitly; there is no implicit module state.
const (
	// DefaultTopProducts is the default result size for TopSellingProducts.
	DefaultTopProducts = 5

	// DefaultLowQuantityThreshold is the default quantity threshold for
	// LowPerformingProducts.
	DefaultLowQuantityThreshold = 10
)

// ProductStat summarizes the sales of one product.
type ProductStat struct {
	// Name is the cleaned product name.
	Name string

	// TotalQuantity is the summed quantity sold.
	TotalQuantity int

	// TotalRevenue is the summed transaction amount, rounded to 2 decimals.
	TotalRevenue float64
}

// TopSellingProducts returns the n products with the highest total quantity
// sold, ordered by quantity descending. Ties retain the encounter order of
// each product's first occurrence.
func TopSellingProducts(records []types.Transaction, n int) []ProductStat {
	stats := aggregateProducts(records)

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalQuantity > stats[j].TotalQuantity
	})

	if n < 0 {
		n = 0
	}
	if n > len(stats) {
		n = len(stats)
	}
	return stats[:n]
}

// LowPerformingProducts returns every product whose total quantity is
// strictly below threshold, ordered by quantity ascending (stable on ties).
func LowPerformingProducts(records []types.Transaction, threshold int) []ProductStat {
	stats := aggregateProducts(records)

	low := make([]ProductStat, 0, len(stats))
	for _, stat := range stats {
		if stat.TotalQuantity < threshold {
			low = append(low, stat)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].TotalQuantity < low[j].TotalQuantity
	})

	return low
}

// aggregateProducts groups records by product name, summing quantity and
// revenue. The result is in first-occurrence order with revenue rounded.
func aggregateProducts(records []types.Transaction) []ProductStat {
	var order []string
	totals := make(map[string]*ProductStat)

	for _, record := range records {
		stat, ok := totals[record.ProductName]
		if !ok {
			stat = &ProductStat{Name: record.ProductName}
			totals[record.ProductName] = stat
			order = append(order, record.ProductName)
		}
		stat.TotalQuantity += record.Quantity
		stat.TotalRevenue += record.Amount
	}

	stats := make([]ProductStat, 0, len(order))
	for _, name := range order {
		stat := *totals[name]
		stat.TotalRevenue = round2(stat.TotalRevenue)
		stats = append(stats, stat)
	}

	return stats
}
