// Package output provides utilities for formatting and writing calculation results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jfcarrier/mortgage-compare/pkg/mortgage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable
// comparison table, one column per property.
func PrettyFormat(w io.Writer, results []mortgage.Result) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- Results for %d properties ---\n", len(results))
	fmt.Fprintf(w, "%-22s", "Metric")
	for i := range results {
		fmt.Fprintf(w, " | %14s", fmt.Sprintf("Property %d", i+1))
	}
	fmt.Fprintf(w, "\n")

	rows := []struct {
		label string
		value func(r mortgage.Result) string
	}{
		{"Property Value", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.PropertyValue) }},
		{"Loan Amount", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.LoanAmount) }},
		{"Monthly Payment", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.MonthlyMortgagePayment) }},
		{"Total Monthly Costs", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.TotalMonthlyCosts) }},
		{"Total Yearly Costs", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.TotalYearlyCosts) }},
		{"One-Time Costs", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.TotalOneTimeCosts) }},
		{"Cash to Close", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.CashToClose) }},
		{"Price per Sqft", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.PricePerSqft) }},
		{"GDS Ratio", func(r mortgage.Result) string { return p.Sprintf("%.2f%%", r.GDSRatio) }},
		{"TDS Ratio", func(r mortgage.Result) string { return p.Sprintf("%.2f%%", r.TDSRatio) }},
	}

	for _, row := range rows {
		fmt.Fprintf(w, "%-22s", row.label)
		for _, result := range results {
			fmt.Fprintf(w, " | %14s", row.value(result))
		}
		fmt.Fprintf(w, "\n")
	}
}

// CsvFormat outputs in comma-separated value format, one row per property,
// with the canonical record column order.
func CsvFormat(w io.Writer, results []mortgage.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(mortgage.Header()); err != nil {
		return err
	}
	for _, result := range results {
		if err := writer.Write(result.Row()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the results to a CSV file at the given path,
// creating parent directories as needed.
func WriteCSVFile(path string, results []mortgage.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %v", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %v", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return CsvFormat(file, results)
}
