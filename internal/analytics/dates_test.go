package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

func trendRecords() []types.Transaction {
	return []types.Transaction{
		txn("2024-01-16", "Mouse", 4, 25.0, "C002", "South"),    // 100
		txn("2024-01-15", "Laptop", 2, 900.0, "C001", "North"),  // 1800
		txn("2024-01-16", "Keyboard", 1, 45.0, "C002", "South"), // 45
		txn("2024-01-16", "Monitor", 1, 200.0, "C003", "East"),  // 200
	}
}

func TestDailyTrend(t *testing.T) {
	analyzer := NewDateAnalyzer(trendRecords())

	trend := analyzer.DailyTrend()
	require.Len(t, trend, 2)

	// Ascending by date, regardless of input order.
	assert.Equal(t, DailyStat{
		Date:             "2024-01-15",
		Revenue:          1800.0,
		TransactionCount: 1,
		UniqueCustomers:  1,
	}, trend[0])

	assert.Equal(t, DailyStat{
		Date:             "2024-01-16",
		Revenue:          345.0,
		TransactionCount: 3,
		UniqueCustomers:  2,
	}, trend[1])
}

func TestFindPeakDay(t *testing.T) {
	analyzer := NewDateAnalyzer(trendRecords())

	peak, err := analyzer.FindPeakDay()
	require.NoError(t, err)
	assert.Equal(t, PeakDay{
		Date:             "2024-01-15",
		Revenue:          1800.0,
		TransactionCount: 1,
	}, peak)
}

func TestFindPeakDayTieKeepsFirstEncounteredDate(t *testing.T) {
	records := []types.Transaction{
		txn("2024-02-20", "Laptop", 1, 500.0, "C001", "North"),
		txn("2024-02-10", "Laptop", 1, 500.0, "C002", "South"),
	}

	peak, err := NewDateAnalyzer(records).FindPeakDay()
	require.NoError(t, err)

	// 2024-02-20 appears first in the input, so it wins the revenue tie.
	assert.Equal(t, "2024-02-20", peak.Date)
}

func TestFindPeakDayEmpty(t *testing.T) {
	_, err := NewDateAnalyzer(nil).FindPeakDay()
	assert.ErrorIs(t, err, ErrNoTransactions)
}

func TestDateAnalyzerCachingIsInvisible(t *testing.T) {
	records := trendRecords()

	cached := NewDateAnalyzer(records)
	first := cached.DailyTrend()
	peak1, err := cached.FindPeakDay()
	require.NoError(t, err)
	second := cached.DailyTrend()

	fresh := NewDateAnalyzer(records)
	peak2, err := fresh.FindPeakDay()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, fresh.DailyTrend(), first)
	assert.Equal(t, peak2, peak1)
}

func TestDateAnalyzerEmptyGroupingCached(t *testing.T) {
	analyzer := NewDateAnalyzer(nil)

	assert.Empty(t, analyzer.DailyTrend())
	_, err := analyzer.FindPeakDay()
	assert.ErrorIs(t, err, ErrNoTransactions)
	assert.Empty(t, analyzer.DailyTrend())
}
