package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jfcarrier/mortgage-compare/internal/config"
	"github.com/jfcarrier/mortgage-compare/pkg/mortgage"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// propertyPalette is the color cycle for multi-property comparison charts.
var propertyPalette = []string{
	"E91E63", "3F51B5", "4CAF50", "FF9800", "9C27B0",
	"00BCD4", "FF5722", "8BC34A", "673AB7", "009688",
}

// Breakdown chart colors, one per plotted category.
var (
	monthlyBreakdownColors = []string{"2196F3", "FFC107", "4CAF50", "FF5722", "9C27B0"}
	yearlyBreakdownColors  = []string{"8BC34A", "FF5722", "9C27B0"}
	oneTimeBreakdownColors = []string{"3F51B5", "009688", "FF9800"}
)

// cycleColors returns n colors cycling through the property palette.
func cycleColors(n int) []string {
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		colors[i] = propertyPalette[i%len(propertyPalette)]
	}
	return colors
}

func barStyle(hex string) chart.Style {
	color := drawing.ColorFromHex(hex)
	return chart.Style{
		FillColor:   color,
		StrokeColor: color,
	}
}

// renderBarChart writes one PNG bar chart to path.
func renderBarChart(path, title string, cfg config.ChartConfig, labels []string, values []float64, colors []string) error {
	bars := make([]chart.Value, len(values))
	for i := range values {
		bars[i] = chart.Value{
			Label: labels[i],
			Value: values[i],
			Style: barStyle(colors[i%len(colors)]),
		}
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    cfg.Width,
		Height:   cfg.Height,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create chart directory %s: %v", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %v", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := graph.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("failed to render chart %s: %v", path, err)
	}
	return nil
}

// generateComparisonCharts writes the cross-property summary charts into
// outputDir.
func generateComparisonCharts(outputDir string, results []mortgage.Result, cfg config.ChartConfig) error {
	labels := make([]string, len(results))
	for i := range results {
		labels[i] = fmt.Sprintf("Property %d", i+1)
	}
	colors := cycleColors(len(results))

	charts := []struct {
		file  string
		title string
		value func(r mortgage.Result) float64
	}{
		{"monthly_summary.png", "Total Monthly Costs by Property", func(r mortgage.Result) float64 { return r.TotalMonthlyCosts }},
		{"one_time_summary.png", "Total One-Time Costs by Property", func(r mortgage.Result) float64 { return r.TotalOneTimeCosts }},
		{"yearly_summary.png", "Total Yearly Costs by Property", func(r mortgage.Result) float64 { return r.TotalYearlyCosts }},
		{"property_value_summary.png", "Property Values by Property", func(r mortgage.Result) float64 { return r.PropertyValue }},
	}

	for _, c := range charts {
		values := make([]float64, len(results))
		for i, result := range results {
			values[i] = c.value(result)
		}
		if err := renderBarChart(filepath.Join(outputDir, c.file), c.title, cfg, labels, values, colors); err != nil {
			return err
		}
	}
	return nil
}

// generatePropertyCharts writes the per-property breakdown charts into
// outputDir. propertyNumber is 1-based and part of the file names the
// Markdown report links to.
func generatePropertyCharts(outputDir string, propertyNumber int, result mortgage.Result, cfg config.ChartConfig) error {
	monthly := filepath.Join(outputDir, fmt.Sprintf("%d_monthly_breakdown.png", propertyNumber))
	err := renderBarChart(monthly,
		fmt.Sprintf("Monthly Cost Breakdown for Property %d", propertyNumber), cfg,
		[]string{"Mortgage Payment", "Condo Fees", "Property Tax", "School Tax", "Home Insurance"},
		[]float64{result.MonthlyMortgagePayment, result.CondoFees, result.MonthlyPropertyTax, result.MonthlySchoolTax, result.MonthlyHomeInsurance},
		monthlyBreakdownColors)
	if err != nil {
		return err
	}

	yearly := filepath.Join(outputDir, fmt.Sprintf("%d_yearly_breakdown.png", propertyNumber))
	err = renderBarChart(yearly,
		fmt.Sprintf("Yearly Cost Breakdown for Property %d", propertyNumber), cfg,
		[]string{"Property Tax", "School Tax", "Home Insurance"},
		[]float64{result.YearlyPropertyTax, result.YearlySchoolTax, result.YearlyHomeInsurance},
		yearlyBreakdownColors)
	if err != nil {
		return err
	}

	oneTime := filepath.Join(outputDir, fmt.Sprintf("%d_one_time_breakdown.png", propertyNumber))
	return renderBarChart(oneTime,
		fmt.Sprintf("One-Time Cost Breakdown for Property %d", propertyNumber), cfg,
		[]string{"Land Transfer Tax", "Notary Cost", "Inspection Cost"},
		[]float64{result.LandTransferTax, result.NotaryCost, result.InspectionCost},
		oneTimeBreakdownColors)
}
