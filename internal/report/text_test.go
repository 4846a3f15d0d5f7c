package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/analytics"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/validation"
)

func sampleData() Data {
	return Data{
		GeneratedAt:  time.Date(2024, 2, 1, 12, 30, 0, 0, time.UTC),
		SourceFile:   "data/sales_data.txt",
		ParseDropped: 2,
		Summary: validation.Summary{
			TotalInput:       10,
			Invalid:          1,
			FilteredByRegion: 3,
			FinalCount:       6,
		},
		TotalRevenue: 12345.67,
		Regions: []analytics.RegionStat{
			{Region: "North", TotalSales: 10000.0, TransactionCount: 4, Percentage: 81.0},
			{Region: "South", TotalSales: 2345.67, TransactionCount: 2, Percentage: 19.0},
		},
		TopProducts: []analytics.ProductStat{
			{Name: "Laptop", TotalQuantity: 12, TotalRevenue: 10800.0},
		},
		Customers: []analytics.CustomerStat{
			{
				CustomerID:     "C001",
				TotalSpent:     10000.0,
				PurchaseCount:  4,
				AvgOrderValue:  2500.0,
				ProductsBought: []string{"Laptop", "Mouse"},
			},
		},
		DailyTrend: []analytics.DailyStat{
			{Date: "2024-01-15", Revenue: 10000.0, TransactionCount: 4, UniqueCustomers: 1},
		},
		Peak: &analytics.PeakDay{
			Date:             "2024-01-15",
			Revenue:          10000.0,
			TransactionCount: 4,
		},
		EnrichmentRan: true,
		EnrichedCount: 6,
		MatchedCount:  4,
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, sampleData()))

	out := buf.String()

	assert.Contains(t, out, "SALES ANALYTICS REPORT")
	assert.Contains(t, out, "Generated: 2024-02-01 12:30:00")
	assert.Contains(t, out, "Source:    data/sales_data.txt")
	assert.Contains(t, out, "Dropped at parse:     2")
	assert.Contains(t, out, "Analyzed records:     6")
	assert.Contains(t, out, "12345.67")
	assert.Contains(t, out, "North")
	assert.Contains(t, out, "81.00%")
}

func TestRenderTextSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, sampleData()))

	out := buf.String()
	for _, section := range []string{
		"PROCESSING SUMMARY",
		"TOTAL REVENUE",
		"REGION-WISE SALES",
		"TOP-SELLING PRODUCTS",
		"LOW-PERFORMING PRODUCTS",
		"CUSTOMER ANALYSIS",
		"DAILY SALES TREND",
		"PEAK SALES DAY",
		"CATALOG ENRICHMENT",
	} {
		assert.Contains(t, out, section)
	}

	// No low performers in the sample data.
	assert.Contains(t, out, "None")
	assert.Contains(t, out, "1. Laptop")
	assert.Contains(t, out, "products: Laptop, Mouse")
	assert.Contains(t, out, "2024-01-15 with revenue 10000.00 across 4 transactions")
	assert.Contains(t, out, "Matched 4 of 6 records against the product catalog")
}

func TestRenderTextEmptyDataSet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, Data{GeneratedAt: time.Now()}))

	out := buf.String()
	assert.Contains(t, out, "No transactions to analyze")
	assert.Contains(t, out, "Skipped")
	assert.Contains(t, out, "0.00")
}
