package analytics

import (
	"sort"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

// CustomerStat summarizes the purchase pattern of one customer.
type CustomerStat struct {
	// CustomerID is the customer identifier.
	CustomerID string

	// TotalSpent is the summed transaction amount, rounded to 2 decimals.
	TotalSpent float64

	// PurchaseCount is the number of transactions.
	PurchaseCount int

	// AvgOrderValue is TotalSpent / PurchaseCount, rounded to 2 decimals.
	AvgOrderValue float64

	// ProductsBought is the sorted set of distinct product names purchased.
	ProductsBought []string
}

// customerAccum accumulates raw per-customer figures before rounding.
type customerAccum struct {
	totalSpent float64
	count      int
	products   map[string]struct{}
}

// CustomerAnalysis groups records by customer and computes spend, purchase
// count, average order value, and the distinct products bought.
//
// The result is ordered by total spent descending; ties retain the encounter
// order of each customer's first occurrence.
func CustomerAnalysis(records []types.Transaction) []CustomerStat {
	var order []string
	accums := make(map[string]*customerAccum)

	for _, record := range records {
		accum, ok := accums[record.CustomerID]
		if !ok {
			accum = &customerAccum{products: make(map[string]struct{})}
			accums[record.CustomerID] = accum
			order = append(order, record.CustomerID)
		}
		accum.totalSpent += record.Amount
		accum.count++
		accum.products[record.ProductName] = struct{}{}
	}

	stats := make([]CustomerStat, 0, len(order))
	for _, customerID := range order {
		accum := accums[customerID]

		products := make([]string, 0, len(accum.products))
		for name := range accum.products {
			products = append(products, name)
		}
		sort.Strings(products)

		stats = append(stats, CustomerStat{
			CustomerID:     customerID,
			TotalSpent:     round2(accum.totalSpent),
			PurchaseCount:  accum.count,
			AvgOrderValue:  round2(accum.totalSpent / float64(accum.count)),
			ProductsBought: products,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpent > stats[j].TotalSpent
	})

	return stats
}
