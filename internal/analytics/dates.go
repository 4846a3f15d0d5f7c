package analytics

import (
	"errors"
	"sort"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

// ErrNoTransactions is returned by PeakDay when the analyzer holds no
// records. Reaching this after a successful validation pass indicates an
// upstream contract violation, so it propagates rather than being swallowed.
var ErrNoTransactions = errors.New("no transactions to analyze")

// DailyStat summarizes the sales of one date.
type DailyStat struct {
	// Date is the ISO transaction date.
	Date string

	// Revenue is the summed transaction amount, rounded to 2 decimals.
	Revenue float64

	// TransactionCount is the number of transactions on the date.
	TransactionCount int

	// UniqueCustomers is the number of distinct customers on the date.
	UniqueCustomers int
}

// PeakDay identifies the date with the highest revenue.
type PeakDay struct {
	Date             string
	Revenue          float64
	TransactionCount int
}

// dailyAccum accumulates raw per-date figures in first-occurrence order.
type dailyAccum struct {
	date      string
	revenue   float64
	count     int
	customers map[string]struct{}
}

// DateAnalyzer performs date-based trend analysis over one record set.
//
// The date grouping is computed on first access and cached for the lifetime
// of the analyzer; DailyTrend and FindPeakDay share the cached grouping and
// produce results identical to full recomputation. The analyzer is not safe
// for concurrent use; the pipeline is single-threaded.
type DateAnalyzer struct {
	records []types.Transaction

	// daily is the cached grouping, in first-occurrence date order.
	// computed guards the cache so that an empty grouping is not rebuilt.
	daily    []*dailyAccum
	computed bool
}

// NewDateAnalyzer creates an analyzer over the given validated records.
func NewDateAnalyzer(records []types.Transaction) *DateAnalyzer {
	return &DateAnalyzer{records: records}
}

// aggregate builds the per-date grouping on first call and returns the
// cached grouping afterwards.
func (a *DateAnalyzer) aggregate() []*dailyAccum {
	if a.computed {
		return a.daily
	}

	index := make(map[string]*dailyAccum)
	for _, record := range a.records {
		accum, ok := index[record.Date]
		if !ok {
			accum = &dailyAccum{
				date:      record.Date,
				customers: make(map[string]struct{}),
			}
			index[record.Date] = accum
			a.daily = append(a.daily, accum)
		}
		accum.revenue += record.Amount
		accum.count++
		accum.customers[record.CustomerID] = struct{}{}
	}

	a.computed = true
	return a.daily
}

// DailyTrend returns per-date revenue, transaction count, and distinct
// customer count, ordered by date ascending.
func (a *DateAnalyzer) DailyTrend() []DailyStat {
	grouping := a.aggregate()

	stats := make([]DailyStat, 0, len(grouping))
	for _, accum := range grouping {
		stats = append(stats, DailyStat{
			Date:             accum.date,
			Revenue:          round2(accum.revenue),
			TransactionCount: accum.count,
			UniqueCustomers:  len(accum.customers),
		})
	}

	// ISO dates sort chronologically as strings.
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})

	return stats
}

// FindPeakDay returns the date with the maximum revenue. On an exact revenue
// tie the first date encountered in the grouping wins, which is the first
// occurrence order of the input and therefore deterministic.
func (a *DateAnalyzer) FindPeakDay() (PeakDay, error) {
	grouping := a.aggregate()
	if len(grouping) == 0 {
		return PeakDay{}, ErrNoTransactions
	}

	peak := grouping[0]
	for _, accum := range grouping[1:] {
		if accum.revenue > peak.revenue {
			peak = accum
		}
	}

	return PeakDay{
		Date:             peak.date,
		Revenue:          round2(peak.revenue),
		TransactionCount: peak.count,
	}, nil
}
