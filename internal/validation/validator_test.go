package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/salesfile"
	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

func validTxn() types.Transaction {
	return types.Transaction{
		TransactionID: "T001",
		Date:          "2024-01-15",
		ProductID:     "P101",
		ProductName:   "Laptop",
		Quantity:      2,
		UnitPrice:     900.0,
		CustomerID:    "C001",
		Region:        "North",
	}
}

func TestValidateAndFilterStructuralRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Transaction)
	}{
		{"missing region", func(r *types.Transaction) { r.Region = "" }},
		{"missing product name", func(r *types.Transaction) { r.ProductName = "" }},
		{"transaction id prefix", func(r *types.Transaction) { r.TransactionID = "X001" }},
		{"product id prefix", func(r *types.Transaction) { r.ProductID = "Q101" }},
		{"customer id prefix", func(r *types.Transaction) { r.CustomerID = "K001" }},
		{"zero quantity", func(r *types.Transaction) { r.Quantity = 0 }},
		{"negative quantity", func(r *types.Transaction) { r.Quantity = -3 }},
		{"zero unit price", func(r *types.Transaction) { r.UnitPrice = 0 }},
		{"negative unit price", func(r *types.Transaction) { r.UnitPrice = -1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validTxn()
			tt.mutate(&record)

			result := ValidateAndFilter([]types.Transaction{record}, FilterOptions{})
			assert.Equal(t, 1, result.Summary.Invalid)
			assert.Equal(t, 0, result.Summary.FinalCount)
			assert.Empty(t, result.Valid)
		})
	}
}

func TestValidateAndFilterAttachesAmount(t *testing.T) {
	parsed := salesfile.ParseLines([]string{
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North",
	})
	require.Len(t, parsed.Records, 1)

	result := ValidateAndFilter(parsed.Records, FilterOptions{})
	require.Len(t, result.Valid, 1)
	assert.Equal(t, 90000.0, result.Valid[0].Amount)
}

func TestValidateAndFilterRegionFilter(t *testing.T) {
	north1 := validTxn()
	north2 := validTxn()
	north2.TransactionID = "T002"
	south := validTxn()
	south.TransactionID = "T003"
	south.Region = "South"

	records := []types.Transaction{north1, north2, south}
	result := ValidateAndFilter(records, FilterOptions{Region: "North"})

	assert.Equal(t, 1, result.Summary.FilteredByRegion)
	assert.Equal(t, 0, result.Summary.Invalid)
	require.Len(t, result.Valid, 2)
	for _, record := range result.Valid {
		assert.Equal(t, "North", record.Region)
	}

	// The overview reflects the pre-filter data set.
	assert.Equal(t, []string{"North", "South"}, result.Overview.Regions)
}

func TestValidateAndFilterAmountBoundsInclusive(t *testing.T) {
	records := []types.Transaction{validTxn(), validTxn(), validTxn()}
	records[0].Quantity = 1 // amount 900
	records[1].Quantity = 2 // amount 1800
	records[2].Quantity = 3 // amount 2700

	min := 900.0
	max := 1800.0
	result := ValidateAndFilter(records, FilterOptions{MinAmount: &min, MaxAmount: &max})

	// Both bounds are inclusive: 900 and 1800 survive, 2700 does not.
	assert.Equal(t, 1, result.Summary.FilteredByAmount)
	require.Len(t, result.Valid, 2)
	assert.Equal(t, 900.0, result.Valid[0].Amount)
	assert.Equal(t, 1800.0, result.Valid[1].Amount)
}

func TestValidateAndFilterRegionRunsBeforeAmount(t *testing.T) {
	// One record fails both filters. It must be counted against the region
	// filter only, because the region filter always runs first.
	south := validTxn()
	south.Region = "South"
	south.Quantity = 1 // amount 900, below min

	min := 1000.0
	result := ValidateAndFilter([]types.Transaction{south}, FilterOptions{Region: "North", MinAmount: &min})

	assert.Equal(t, 1, result.Summary.FilteredByRegion)
	assert.Equal(t, 0, result.Summary.FilteredByAmount)
	assert.Equal(t, 0, result.Summary.FinalCount)
}

func TestValidateAndFilterOverviewAmounts(t *testing.T) {
	records := []types.Transaction{validTxn(), validTxn()}
	records[0].Quantity = 1 // amount 900
	records[1].Quantity = 5 // amount 4500

	// Filters must not change the overview.
	min := 100000.0
	result := ValidateAndFilter(records, FilterOptions{MinAmount: &min})

	assert.True(t, result.Overview.HasAmounts)
	assert.Equal(t, 900.0, result.Overview.MinAmount)
	assert.Equal(t, 4500.0, result.Overview.MaxAmount)
	assert.Equal(t, 0, result.Summary.FinalCount)
}

func TestValidateAndFilterEmptyInput(t *testing.T) {
	result := ValidateAndFilter(nil, FilterOptions{})

	assert.Equal(t, 0, result.Summary.TotalInput)
	assert.Equal(t, 0, result.Summary.FinalCount)
	assert.False(t, result.Overview.HasAmounts)
	assert.Empty(t, result.Overview.Regions)
}

func TestParseAmountBound(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *float64
		wantErr bool
	}{
		{"empty disables bound", "", nil, false},
		{"whitespace disables bound", "   ", nil, false},
		{"valid integer", "1000", floatPtr(1000), false},
		{"valid decimal", "99.5", floatPtr(99.5), false},
		{"malformed", "abc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmountBound(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
