package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

func TestExtractNumericID(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		want      int
		wantErr   bool
	}{
		{"standard prefix", "P101", 101, false},
		{"digits only", "42", 42, false},
		{"digits scattered", "P1A0B1", 101, false},
		{"no digits", "PRODUCT", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractNumericID(tt.productID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildProductIndex(t *testing.T) {
	products := []CatalogProduct{
		{ID: 1, Title: "Phone"},
		{ID: 0, Title: "No ID"},
		{ID: 2, Title: "Laptop"},
	}

	index := BuildProductIndex(products)
	require.Len(t, index, 2)
	assert.Equal(t, "Phone", index[1].Title)
	assert.Equal(t, "Laptop", index[2].Title)
}

func TestEnrich(t *testing.T) {
	index := map[int]CatalogProduct{
		101: {ID: 101, Category: "laptops", Brand: "Apple", Rating: 4.5},
	}

	records := []types.Transaction{
		{TransactionID: "T001", ProductID: "P101", ProductName: "Laptop"},
		{TransactionID: "T002", ProductID: "P999", ProductName: "Unknown"},
		{TransactionID: "T003", ProductID: "PROD", ProductName: "No Digits"},
	}

	enriched := Enrich(records, index)
	require.Len(t, enriched, 3)

	// Order matches input; only the catalog hit is annotated.
	assert.Equal(t, "T001", enriched[0].TransactionID)
	assert.True(t, enriched[0].Matched)
	assert.Equal(t, "laptops", enriched[0].Category)
	assert.Equal(t, "Apple", enriched[0].Brand)
	assert.Equal(t, 4.5, enriched[0].Rating)

	assert.False(t, enriched[1].Matched)
	assert.Empty(t, enriched[1].Category)

	assert.False(t, enriched[2].Matched)

	assert.Equal(t, 1, MatchCount(enriched))
}

func TestEnrichEmptyIndex(t *testing.T) {
	records := []types.Transaction{{TransactionID: "T001", ProductID: "P101"}}

	enriched := Enrich(records, map[int]CatalogProduct{})
	require.Len(t, enriched, 1)
	assert.False(t, enriched[0].Matched)
	assert.Equal(t, 0, MatchCount(enriched))
}
