package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const bannerWidth = 50

// WriteText renders the report to a text file, creating the parent directory
// if necessary.
func WriteText(path string, data Data) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	return RenderText(file, data)
}

// RenderText writes the formatted text report to w.
func RenderText(w io.Writer, data Data) error {
	var b strings.Builder

	banner := strings.Repeat("=", bannerWidth)
	divider := strings.Repeat("-", bannerWidth)

	b.WriteString(banner + "\n")
	b.WriteString("SALES ANALYTICS REPORT\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", data.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Source:    %s\n\n", data.SourceFile)

	// Record counts.
	b.WriteString("PROCESSING SUMMARY\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Parsed records:       %d\n", data.Summary.TotalInput)
	fmt.Fprintf(&b, "Dropped at parse:     %d\n", data.ParseDropped)
	fmt.Fprintf(&b, "Invalid records:      %d\n", data.Summary.Invalid)
	fmt.Fprintf(&b, "Filtered by region:   %d\n", data.Summary.FilteredByRegion)
	fmt.Fprintf(&b, "Filtered by amount:   %d\n", data.Summary.FilteredByAmount)
	fmt.Fprintf(&b, "Analyzed records:     %d\n\n", data.Summary.FinalCount)

	// Revenue.
	b.WriteString("TOTAL REVENUE\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "%.2f\n\n", data.TotalRevenue)

	// Regions.
	b.WriteString("REGION-WISE SALES\n")
	b.WriteString(divider + "\n")
	for _, region := range data.Regions {
		fmt.Fprintf(&b, "%-15s %12.2f  %4d txns  %6.2f%%\n",
			region.Region, region.TotalSales, region.TransactionCount, region.Percentage)
	}
	b.WriteString("\n")

	// Top products.
	b.WriteString("TOP-SELLING PRODUCTS\n")
	b.WriteString(divider + "\n")
	for i, product := range data.TopProducts {
		fmt.Fprintf(&b, "%d. %-25s qty %5d  revenue %12.2f\n",
			i+1, product.Name, product.TotalQuantity, product.TotalRevenue)
	}
	b.WriteString("\n")

	// Low performers.
	b.WriteString("LOW-PERFORMING PRODUCTS\n")
	b.WriteString(divider + "\n")
	if len(data.LowProducts) == 0 {
		b.WriteString("None\n")
	}
	for _, product := range data.LowProducts {
		fmt.Fprintf(&b, "%-28s qty %5d  revenue %12.2f\n",
			product.Name, product.TotalQuantity, product.TotalRevenue)
	}
	b.WriteString("\n")

	// Customers.
	b.WriteString("CUSTOMER ANALYSIS\n")
	b.WriteString(divider + "\n")
	for _, customer := range data.Customers {
		fmt.Fprintf(&b, "%-8s spent %12.2f  %3d orders  avg %10.2f  products: %s\n",
			customer.CustomerID, customer.TotalSpent, customer.PurchaseCount,
			customer.AvgOrderValue, strings.Join(customer.ProductsBought, ", "))
	}
	b.WriteString("\n")

	// Daily trend.
	b.WriteString("DAILY SALES TREND\n")
	b.WriteString(divider + "\n")
	for _, day := range data.DailyTrend {
		fmt.Fprintf(&b, "%s  revenue %12.2f  %4d txns  %4d customers\n",
			day.Date, day.Revenue, day.TransactionCount, day.UniqueCustomers)
	}
	b.WriteString("\n")

	// Peak day.
	b.WriteString("PEAK SALES DAY\n")
	b.WriteString(divider + "\n")
	if data.Peak != nil {
		fmt.Fprintf(&b, "%s with revenue %.2f across %d transactions\n\n",
			data.Peak.Date, data.Peak.Revenue, data.Peak.TransactionCount)
	} else {
		b.WriteString("No transactions to analyze\n\n")
	}

	// Enrichment.
	b.WriteString("CATALOG ENRICHMENT\n")
	b.WriteString(divider + "\n")
	if data.EnrichmentRan {
		fmt.Fprintf(&b, "Matched %d of %d records against the product catalog\n",
			data.MatchedCount, data.EnrichedCount)
	} else {
		b.WriteString("Skipped\n")
	}
	b.WriteString(banner + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
