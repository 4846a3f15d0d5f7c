package analytics

import (
	"sort"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

// RegionStat summarizes the sales of one region.
type RegionStat struct {
	// Region is the region name.
	Region string

	// TotalSales is the summed transaction amount, rounded to 2 decimals.
	TotalSales float64

	// TransactionCount is the number of transactions in the region.
	TransactionCount int

	// Percentage is the region's share of grand total revenue. It is 0.0
	// when the grand total is 0.
	Percentage float64
}

// RegionSales groups records by region and computes per-region totals,
// counts, and percentage shares of grand total revenue.
//
// The result is ordered by total sales descending; ties retain the encounter
// order of each region's first occurrence.
func RegionSales(records []types.Transaction) []RegionStat {
	grandTotal := TotalRevenue(records)

	// Accumulate in first-occurrence order.
	var order []string
	totals := make(map[string]*RegionStat)

	for _, record := range records {
		stat, ok := totals[record.Region]
		if !ok {
			stat = &RegionStat{Region: record.Region}
			totals[record.Region] = stat
			order = append(order, record.Region)
		}
		stat.TotalSales += record.Amount
		stat.TransactionCount++
	}

	stats := make([]RegionStat, 0, len(order))
	for _, region := range order {
		stat := *totals[region]
		stat.TotalSales = round2(stat.TotalSales)
		if grandTotal > 0 {
			stat.Percentage = round2(stat.TotalSales / grandTotal * 100)
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales > stats[j].TotalSales
	})

	return stats
}
