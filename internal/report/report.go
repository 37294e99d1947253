// Package report renders the Markdown affordability report and its charts.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jfcarrier/mortgage-compare/internal/config"
	"github.com/jfcarrier/mortgage-compare/pkg/constants"
	"github.com/jfcarrier/mortgage-compare/pkg/mortgage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatRate renders a percentage with up to 5 decimals, trailing zeros
// stripped, e.g. 0.08423 -> "0.08423" and 1.50 -> "1.5".
func formatRate(value float64) string {
	s := strconv.FormatFloat(value, 'f', 5, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// Generate writes the Markdown report to reportPath and all referenced
// chart PNGs next to it.
func Generate(reportPath string, results []mortgage.Result, conf config.Configuration) error {
	if len(results) == 0 {
		return fmt.Errorf("cannot generate report with empty results")
	}

	outputDir := filepath.Dir(reportPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %v", outputDir, err)
	}

	if err := generateComparisonCharts(outputDir, results, conf.Chart); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	money := func(value float64) string { return p.Sprintf("$%.2f", value) }

	var b strings.Builder
	b.WriteString("# Mortgage Calculation Report\n")
	fmt.Fprintf(&b, "**Total Properties Analyzed:** %d\n\n", len(results))

	b.WriteString("## Personal Financial Details\n")
	b.WriteString("| Item | Value |\n")
	b.WriteString("|------|-------|\n")
	fmt.Fprintf(&b, "| Down Payment | %s |\n", money(conf.LoanParameters.DownPayment))
	fmt.Fprintf(&b, "| Monthly Salary (Gross) | %s |\n", money(conf.LoanParameters.MonthlySalary))
	fmt.Fprintf(&b, "| Monthly Debt Payments | %s |\n", money(conf.LoanParameters.MonthlyDebtPayment))
	b.WriteString("\n")

	b.WriteString("## Properties Analyzed:\n")
	for i, result := range results {
		number := i + 1
		if err := generatePropertyCharts(outputDir, number, result, conf.Chart); err != nil {
			return err
		}

		fmt.Fprintf(&b, "### Property %d\n", number)
		if result.Address != "" {
			fmt.Fprintf(&b, "**Address:** %s\n\n", result.Address)
		}
		if result.Description != "" {
			fmt.Fprintf(&b, "**Description:** %s\n\n", result.Description)
		}
		if result.Link != "" {
			fmt.Fprintf(&b, "**Link:** [View Listing](%s)\n\n", result.Link)
		}

		b.WriteString("#### Property Details\n")
		b.WriteString("| Item | Value |\n")
		b.WriteString("|------|-------|\n")
		fmt.Fprintf(&b, "| Property Value | %s |\n", money(result.PropertyValue))
		fmt.Fprintf(&b, "| Area | %v sqft |\n", result.Area)
		fmt.Fprintf(&b, "| Year Built | %d |\n", result.YearBuilt)
		fmt.Fprintf(&b, "| Bedrooms | %d |\n", result.Bedrooms)
		fmt.Fprintf(&b, "| Bathrooms | %d |\n", result.Bathrooms)
		fmt.Fprintf(&b, "| Loan Amount | %s |\n", money(result.LoanAmount))
		fmt.Fprintf(&b, "| Interest Rate | %s%% |\n", formatRate(result.InterestRate))
		fmt.Fprintf(&b, "| Loan Term | %d years |\n", result.YearsOfLoan)
		fmt.Fprintf(&b, "| Monthly Interest (Initial) | %s |\n", money(result.MonthlyInterest))
		fmt.Fprintf(&b, "| Yearly Interest (Initial) | %s |\n", money(result.YearlyInterest))
		fmt.Fprintf(&b, "| Total Interest (Loan Term) | %s |\n", money(result.TotalInterest))
		b.WriteString("\n")

		b.WriteString("#### Monthly Costs\n")
		b.WriteString("| Item | Amount |\n")
		b.WriteString("|------|--------|\n")
		fmt.Fprintf(&b, "| Mortgage Payment | %s |\n", money(result.MonthlyMortgagePayment))
		fmt.Fprintf(&b, "| Condo Fees | %s |\n", money(result.CondoFees))
		fmt.Fprintf(&b, "| Property Tax (Amortized) | %s |\n", money(result.MonthlyPropertyTax))
		fmt.Fprintf(&b, "| School Tax (Amortized) | %s |\n", money(result.MonthlySchoolTax))
		fmt.Fprintf(&b, "| Home Insurance (Amortized) | %s |\n", money(result.MonthlyHomeInsurance))
		fmt.Fprintf(&b, "| **Total Monthly Costs** | **%s** |\n", money(result.TotalMonthlyCosts))
		b.WriteString("\n")
		fmt.Fprintf(&b, "![Monthly Breakdown](%d_monthly_breakdown.png)\n", number)

		b.WriteString("#### Affordability Ratios\n")
		b.WriteString("| Ratio | Value | Guideline |\n")
		b.WriteString("|-------|-------|-----------|\n")
		fmt.Fprintf(&b, "| GDS (Gross Debt Service) | %s%% | <= %.0f%% |\n", formatRate(result.GDSRatio), constants.GDSGuideline)
		fmt.Fprintf(&b, "| TDS (Total Debt Service) | %s%% | <= %.0f%% |\n", formatRate(result.TDSRatio), constants.TDSGuideline)
		b.WriteString("\n*GDS = Total housing costs / Gross monthly income. " +
			"TDS = (Housing costs + other debts) / Gross monthly income.*\n\n")

		b.WriteString("#### One-Time Costs\n")
		b.WriteString("| Item | Amount |\n")
		b.WriteString("|------|--------|\n")
		fmt.Fprintf(&b, "| Land Transfer Tax (%s%%) | %s |\n", formatRate(result.LandTransferTaxRate), money(result.LandTransferTax))
		fmt.Fprintf(&b, "| Notary Cost | %s |\n", money(result.NotaryCost))
		fmt.Fprintf(&b, "| Inspection Cost | %s |\n", money(result.InspectionCost))
		fmt.Fprintf(&b, "| **Total One-Time Costs** | **%s** |\n", money(result.TotalOneTimeCosts))
		b.WriteString("\n")
		fmt.Fprintf(&b, "![One-Time Breakdown](%d_one_time_breakdown.png)\n", number)

		b.WriteString("#### Cash to Close\n")
		b.WriteString("| Item | Amount |\n")
		b.WriteString("|------|--------|\n")
		fmt.Fprintf(&b, "| Down Payment | %s |\n", money(result.DownPayment))
		fmt.Fprintf(&b, "| Total One-Time Costs | %s |\n", money(result.TotalOneTimeCosts))
		fmt.Fprintf(&b, "| **Estimated Cash to Close** | **%s** |\n", money(result.CashToClose))
		b.WriteString("\n")

		b.WriteString("#### Yearly Costs\n")
		b.WriteString("| Item | Amount |\n")
		b.WriteString("|------|--------|\n")
		fmt.Fprintf(&b, "| Property Tax (%s%%) | %s |\n", formatRate(result.PropertyTaxRate), money(result.YearlyPropertyTax))
		fmt.Fprintf(&b, "| School Tax (%s%%) | %s |\n", formatRate(result.SchoolTaxRate), money(result.YearlySchoolTax))
		fmt.Fprintf(&b, "| Home Insurance | %s |\n", money(result.YearlyHomeInsurance))
		fmt.Fprintf(&b, "| **Total Yearly Costs** | **%s** |\n", money(result.TotalYearlyCosts))
		b.WriteString("\n")
		fmt.Fprintf(&b, "![Yearly Breakdown](%d_yearly_breakdown.png)\n", number)

		b.WriteString("---\n")
	}

	b.WriteString("## Cost Comparison Charts\n")
	b.WriteString("### Property Values by Property\n")
	b.WriteString("![Property Values by Property](property_value_summary.png)\n")
	b.WriteString("### Total Monthly Costs by Property\n")
	b.WriteString("![Total Monthly Costs by Property](monthly_summary.png)\n")
	b.WriteString("### Total Yearly Costs by Property\n")
	b.WriteString("![Yearly Costs by Property](yearly_summary.png)\n")
	b.WriteString("### One-Time Costs by Property\n")
	b.WriteString("![One-Time Costs by Property](one_time_summary.png)\n")

	writeComparisonSummary(&b, p, results)
	writeRankings(&b, p, results)

	if err := os.WriteFile(reportPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %v", reportPath, err)
	}
	return nil
}

// writeComparisonSummary emits the side-by-side comparison table.
func writeComparisonSummary(b *strings.Builder, p *message.Printer, results []mortgage.Result) {
	b.WriteString("## Property Comparison Summary\n\n")
	b.WriteString("### Side-by-Side Comparison\n")

	b.WriteString("| |")
	for i := range results {
		fmt.Fprintf(b, " [Property %d](#property-%d) |", i+1, i+1)
	}
	b.WriteString("\n|--------|")
	b.WriteString(strings.Repeat("----------|", len(results)))
	b.WriteString("\n")

	section := func(name string) {
		fmt.Fprintf(b, "| **%s** |", name)
		b.WriteString(strings.Repeat(" |", len(results)))
		b.WriteString("\n")
	}
	row := func(label string, value func(r mortgage.Result) string) {
		fmt.Fprintf(b, "| %s |", label)
		for _, result := range results {
			fmt.Fprintf(b, " %s |", value(result))
		}
		b.WriteString("\n")
	}
	orDash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}

	section("Property Info")
	row("Address", func(r mortgage.Result) string { return orDash(r.Address) })
	row("Description", func(r mortgage.Result) string { return orDash(r.Description) })
	row("Listing", func(r mortgage.Result) string {
		if r.Link == "" {
			return "-"
		}
		return fmt.Sprintf("[View](%s)", r.Link)
	})

	section("Physical Details")
	row("Area (sqft)", func(r mortgage.Result) string { return p.Sprintf("%v", r.Area) })
	row("Bed/Bath", func(r mortgage.Result) string { return fmt.Sprintf("%d/%d", r.Bedrooms, r.Bathrooms) })

	section("Financial Overview")
	row("Property Value", func(r mortgage.Result) string { return p.Sprintf("$%.0f", r.PropertyValue) })
	row("Price/sqft", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.PricePerSqft) })
	row("Monthly Costs", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.TotalMonthlyCosts) })
	row("Yearly Costs", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.TotalYearlyCosts) })
	row("One-Time Costs", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.TotalOneTimeCosts) })
	row("Cash to Close", func(r mortgage.Result) string { return p.Sprintf("$%.2f", r.CashToClose) })

	section("Affordability")
	row("GDS Ratio", func(r mortgage.Result) string { return formatRate(r.GDSRatio) + "%" })
	row("TDS Ratio", func(r mortgage.Result) string { return formatRate(r.TDSRatio) + "%" })
	b.WriteString("\n")
}

// writeRankings emits the monthly-cost and price-per-sqft rankings.
// Properties with no usable price per sqft sort last.
func writeRankings(b *strings.Builder, p *message.Printer, results []mortgage.Result) {
	b.WriteString("### Rankings\n\n")

	byMonthly := make([]int, len(results))
	for i := range byMonthly {
		byMonthly[i] = i
	}
	sort.SliceStable(byMonthly, func(a, c int) bool {
		return results[byMonthly[a]].TotalMonthlyCosts < results[byMonthly[c]].TotalMonthlyCosts
	})
	b.WriteString("**Lowest Monthly Costs:**\n")
	for rank, idx := range byMonthly {
		fmt.Fprintf(b, "%d. [Property %d](#property-%d) - %s/month\n",
			rank+1, idx+1, idx+1, p.Sprintf("$%.2f", results[idx].TotalMonthlyCosts))
	}
	b.WriteString("\n")

	byValue := make([]int, len(results))
	for i := range byValue {
		byValue[i] = i
	}
	sort.SliceStable(byValue, func(a, c int) bool {
		left, right := results[byValue[a]].PricePerSqft, results[byValue[c]].PricePerSqft
		if left <= 0 {
			return false
		}
		if right <= 0 {
			return true
		}
		return left < right
	})
	b.WriteString("**Best Value (Price/sqft):**\n")
	for rank, idx := range byValue {
		fmt.Fprintf(b, "%d. [Property %d](#property-%d) - %s/sqft\n",
			rank+1, idx+1, idx+1, p.Sprintf("$%.2f", results[idx].PricePerSqft))
	}
	b.WriteString("\n---\n")
}
