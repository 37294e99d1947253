// Package constants provides shared constants for the mortgage-compare application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// RatePrecision is the precision for decimal-fraction rate rounding
	// (7 decimal places, enough to keep 5 decimal digits of a percentage)
	RatePrecision = 1e7

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Output destination defaults
const (
	// DefaultOutputDir is the directory results are written to
	DefaultOutputDir = "output"

	// DefaultOutputData is the default CSV data file name
	DefaultOutputData = "mortgage_data.csv"

	// DefaultOutputReport is the default Markdown report file name
	DefaultOutputReport = "mortgage_report.md"
)

// Chart rendering defaults
const (
	// DefaultChartWidth is the default chart width in pixels
	DefaultChartWidth = 900

	// DefaultChartHeight is the default chart height in pixels
	DefaultChartHeight = 600
)

// Affordability guidelines quoted in the report
const (
	// GDSGuideline is the conventional upper bound for the GDS ratio
	GDSGuideline = 32.0

	// TDSGuideline is the conventional upper bound for the TDS ratio
	TDSGuideline = 40.0
)
