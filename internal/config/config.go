// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
package config

import (
	"fmt"

	"github.com/jfcarrier/mortgage-compare/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-compare.
type Configuration struct {
	Properties        []Property
	LoanParameters    LoanParameters
	NecessaryExpenses NecessaryExpenses
	OutputDir         string
	OutputData        string
	OutputReport      string
	Chart             ChartConfig   `yaml:"chart,omitempty"`
	Logging           LoggingConfig `yaml:"logging,omitempty"`
	Output            OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ChartConfig holds chart rendering dimensions in pixels.
type ChartConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// LandTransferTaxBracket pairs a property-value threshold with the tax
// rate (as a percentage) that applies above it. Bracket lists must be
// ordered from highest threshold to lowest.
type LandTransferTaxBracket struct {
	Threshold float64
	Rate      float64
}

// Property holds one property's physical and tax attributes plus
// display-only listing metadata. Tax rates are percentages.
type Property struct {
	Value                   float64
	CondoFees               float64
	AreaSqft                float64
	PropertyTax             float64 // percentage
	SchoolTax               float64 // percentage
	YearlyHomeInsurance     float64
	LandTransferTaxBrackets []LandTransferTaxBracket

	// Listing metadata; display-only.
	Description string
	Address     string
	Link        string
	Bedrooms    int
	Bathrooms   int
	YearBuilt   int
}

// LoanParameters holds the loan and borrower parameters shared across all
// properties in a batch.
type LoanParameters struct {
	DownPayment        float64
	InterestRate       float64 // annual percentage
	YearsOfLoan        int
	MonthlySalary      float64
	MonthlyDebtPayment float64
}

// NecessaryExpenses holds the flat one-time purchase costs shared across
// all properties.
type NecessaryExpenses struct {
	NotaryCost     float64
	InspectionCost float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()

	return &configuration, nil
}

// ApplyDefaults fills in the output and chart settings that were omitted
// from the configuration file.
func (conf *Configuration) ApplyDefaults() {
	if conf.OutputDir == "" {
		conf.OutputDir = constants.DefaultOutputDir
	}
	if conf.OutputData == "" {
		conf.OutputData = constants.DefaultOutputData
	}
	if conf.OutputReport == "" {
		conf.OutputReport = constants.DefaultOutputReport
	}
	if conf.Chart.Width <= 0 {
		conf.Chart.Width = constants.DefaultChartWidth
	}
	if conf.Chart.Height <= 0 {
		conf.Chart.Height = constants.DefaultChartHeight
	}
}
