package salesfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harichandana-yeluri/bitsom-ba-25071769-sales-analytics-system/internal/types"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantRecords int
		wantDropped int
	}{
		{
			name:        "valid line",
			lines:       []string{"T001|2024-01-15|P101|Laptop|100|900.0|C001|North"},
			wantRecords: 1,
			wantDropped: 0,
		},
		{
			name:        "too few fields dropped",
			lines:       []string{"T001|2024-01-15|P101|Laptop|100|900.0|C001"},
			wantRecords: 0,
			wantDropped: 1,
		},
		{
			name:        "too many fields dropped",
			lines:       []string{"T001|2024-01-15|P101|Laptop|100|900.0|C001|North|extra"},
			wantRecords: 0,
			wantDropped: 1,
		},
		{
			name:        "non-numeric quantity dropped",
			lines:       []string{"T002|2024-01-15|P102|Mouse|abc|25.5|C002|South"},
			wantRecords: 0,
			wantDropped: 1,
		},
		{
			name:        "non-numeric price dropped",
			lines:       []string{"T002|2024-01-15|P102|Mouse|5|free|C002|South"},
			wantRecords: 0,
			wantDropped: 1,
		},
		{
			name: "mixed batch keeps order and counts drops",
			lines: []string{
				"T001|2024-01-15|P101|Laptop|2|900.0|C001|North",
				"broken line",
				"T002|2024-01-16|P102|Mouse|5|25.5|C002|South",
			},
			wantRecords: 2,
			wantDropped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseLines(tt.lines)
			assert.Len(t, result.Records, tt.wantRecords)
			assert.Equal(t, tt.wantDropped, result.Dropped)
		})
	}
}

func TestParseLinesFieldCleaning(t *testing.T) {
	result := ParseLines([]string{
		"  T001 | 2024-01-15 | P101 |Wireless,Mouse| 1,200 | 1,499.99 | C001 | North ",
	})
	require.Len(t, result.Records, 1)

	record := result.Records[0]
	assert.Equal(t, "T001", record.TransactionID)
	assert.Equal(t, "2024-01-15", record.Date)
	assert.Equal(t, "P101", record.ProductID)
	assert.Equal(t, "Wireless Mouse", record.ProductName)
	assert.Equal(t, 1200, record.Quantity)
	assert.Equal(t, 1499.99, record.UnitPrice)
	assert.Equal(t, "C001", record.CustomerID)
	assert.Equal(t, "North", record.Region)
}

func TestParseLinesPreservesInputOrder(t *testing.T) {
	result := ParseLines([]string{
		"T003|2024-01-17|P103|Keyboard|3|45.0|C003|East",
		"T001|2024-01-15|P101|Laptop|2|900.0|C001|North",
		"T002|2024-01-16|P102|Mouse|5|25.5|C002|South",
	})
	require.Len(t, result.Records, 3)

	ids := make([]string, 0, len(result.Records))
	for _, record := range result.Records {
		ids = append(ids, record.TransactionID)
	}
	assert.Equal(t, []string{"T003", "T001", "T002"}, ids)
}

func TestParseLinesAmountNotSetAtParseTime(t *testing.T) {
	result := ParseLines([]string{"T001|2024-01-15|P101|Laptop|100|900.0|C001|North"})
	require.Len(t, result.Records, 1)

	// Amount is derived during validation, never during parsing.
	assert.Equal(t, types.Transaction{
		TransactionID: "T001",
		Date:          "2024-01-15",
		ProductID:     "P101",
		ProductName:   "Laptop",
		Quantity:      100,
		UnitPrice:     900.0,
		CustomerID:    "C001",
		Region:        "North",
	}, result.Records[0])
}
