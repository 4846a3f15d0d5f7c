package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX workbook.
const (
	sheetSummary   = "Summary"
	sheetRegions   = "Regions"
	sheetProducts  = "Products"
	sheetCustomers = "Customers"
	sheetDaily     = "Daily Trend"
)

// WriteXLSX renders the report as an XLSX workbook with one sheet per
// analysis section.
func WriteXLSX(path string, data Data) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the summary sheet.
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	if err := writeSummarySheet(f, data); err != nil {
		return err
	}
	if err := writeRegionsSheet(f, data); err != nil {
		return err
	}
	if err := writeProductsSheet(f, data); err != nil {
		return err
	}
	if err := writeCustomersSheet(f, data); err != nil {
		return err
	}
	if err := writeDailySheet(f, data); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

func writeSummarySheet(f *excelize.File, data Data) error {
	rows := [][]interface{}{
		{"Generated", data.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Source File", data.SourceFile},
		{"Parsed Records", data.Summary.TotalInput},
		{"Dropped At Parse", data.ParseDropped},
		{"Invalid Records", data.Summary.Invalid},
		{"Filtered By Region", data.Summary.FilteredByRegion},
		{"Filtered By Amount", data.Summary.FilteredByAmount},
		{"Analyzed Records", data.Summary.FinalCount},
		{"Total Revenue", data.TotalRevenue},
	}

	if data.Peak != nil {
		rows = append(rows,
			[]interface{}{"Peak Sales Day", data.Peak.Date},
			[]interface{}{"Peak Day Revenue", data.Peak.Revenue})
	}
	if data.EnrichmentRan {
		rows = append(rows,
			[]interface{}{"Catalog Matches", data.MatchedCount},
			[]interface{}{"Enriched Records", data.EnrichedCount})
	}

	return writeRows(f, sheetSummary, rows)
}

func writeRegionsSheet(f *excelize.File, data Data) error {
	rows := [][]interface{}{
		{"Region", "Total Sales", "Transactions", "Percentage"},
	}
	for _, region := range data.Regions {
		rows = append(rows, []interface{}{
			region.Region, region.TotalSales, region.TransactionCount, region.Percentage,
		})
	}
	return writeNewSheet(f, sheetRegions, rows)
}

func writeProductsSheet(f *excelize.File, data Data) error {
	rows := [][]interface{}{
		{"Rank", "Product", "Total Quantity", "Total Revenue"},
	}
	for i, product := range data.TopProducts {
		rows = append(rows, []interface{}{
			i + 1, product.Name, product.TotalQuantity, product.TotalRevenue,
		})
	}

	rows = append(rows, []interface{}{}, []interface{}{"Low Performers"})
	for _, product := range data.LowProducts {
		rows = append(rows, []interface{}{
			"", product.Name, product.TotalQuantity, product.TotalRevenue,
		})
	}
	return writeNewSheet(f, sheetProducts, rows)
}

func writeCustomersSheet(f *excelize.File, data Data) error {
	rows := [][]interface{}{
		{"Customer", "Total Spent", "Purchases", "Avg Order Value", "Products"},
	}
	for _, customer := range data.Customers {
		products := ""
		for i, name := range customer.ProductsBought {
			if i > 0 {
				products += ", "
			}
			products += name
		}
		rows = append(rows, []interface{}{
			customer.CustomerID, customer.TotalSpent, customer.PurchaseCount,
			customer.AvgOrderValue, products,
		})
	}
	return writeNewSheet(f, sheetCustomers, rows)
}

func writeDailySheet(f *excelize.File, data Data) error {
	rows := [][]interface{}{
		{"Date", "Revenue", "Transactions", "Unique Customers"},
	}
	for _, day := range data.DailyTrend {
		rows = append(rows, []interface{}{
			day.Date, day.Revenue, day.TransactionCount, day.UniqueCustomers,
		})
	}
	return writeNewSheet(f, sheetDaily, rows)
}

// writeNewSheet creates a sheet and fills it with rows.
func writeNewSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	return writeRows(f, sheet, rows)
}

// writeRows writes rows starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell for sheet %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
