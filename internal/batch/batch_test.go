package batch

import (
	"strings"
	"testing"

	"github.com/jfcarrier/mortgage-compare/internal/config"
	"go.uber.org/zap"
)

func testConfiguration() config.Configuration {
	brackets := []config.LandTransferTaxBracket{
		{Threshold: 200000, Rate: 1.5},
		{Threshold: 0, Rate: 0.5},
	}
	return config.Configuration{
		Properties: []config.Property{
			{
				Description:             "Condo",
				Value:                   300000,
				CondoFees:               300,
				AreaSqft:                900,
				PropertyTax:             0.5,
				SchoolTax:               0.1,
				YearlyHomeInsurance:     1200,
				LandTransferTaxBrackets: brackets,
			},
			{
				Description:             "Townhouse",
				Value:                   425000,
				CondoFees:               0,
				AreaSqft:                1400,
				PropertyTax:             0.6,
				SchoolTax:               0.12,
				YearlyHomeInsurance:     1500,
				LandTransferTaxBrackets: brackets,
			},
		},
		LoanParameters: config.LoanParameters{
			DownPayment:        60000,
			InterestRate:       5.0,
			YearsOfLoan:        25,
			MonthlySalary:      6000,
			MonthlyDebtPayment: 200,
		},
		NecessaryExpenses: config.NecessaryExpenses{
			NotaryCost:     1500,
			InspectionCost: 500,
		},
	}
}

func TestRun(t *testing.T) {
	results, err := Run(zap.NewNop(), testConfiguration())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Run() returned %d results, expected 2", len(results))
	}

	first := results[0]
	if first.Description != "Condo" {
		t.Errorf("first result description = %q, expected Condo", first.Description)
	}
	if first.LoanAmount != 240000 {
		t.Errorf("first result loan amount = %v, expected 240000", first.LoanAmount)
	}
	if first.LandTransferTaxRate != 1.5 {
		t.Errorf("first result land transfer tax rate = %v, expected 1.5", first.LandTransferTaxRate)
	}

	second := results[1]
	if second.LoanAmount != 365000 {
		t.Errorf("second result loan amount = %v, expected 365000", second.LoanAmount)
	}
	// Shared loan parameters apply to every property.
	if first.DownPayment != second.DownPayment || first.MonthlySalary != second.MonthlySalary {
		t.Errorf("shared loan parameters differ between results")
	}
}

func TestRunNilLogger(t *testing.T) {
	if _, err := Run(nil, testConfiguration()); err != nil {
		t.Errorf("Run() with nil logger error = %v", err)
	}
}

func TestRunValidationFailureAbortsBatch(t *testing.T) {
	conf := testConfiguration()
	conf.Properties[0].CondoFees = -10
	conf.LoanParameters.DownPayment = 500000 // above both property values

	results, err := Run(zap.NewNop(), conf)
	if err == nil {
		t.Fatal("Run() = nil error, expected aggregate validation failure")
	}
	if results != nil {
		t.Errorf("Run() returned partial results %v on validation failure", results)
	}

	// Every violation is reported in the single error: the negative condo
	// fees plus one cross-field check per property.
	text := err.Error()
	for _, fragment := range []string{
		"condo fees cannot be negative",
		"property 1: down payment",
		"property 2: down payment",
	} {
		if !strings.Contains(text, fragment) {
			t.Errorf("error %q does not contain %q", text, fragment)
		}
	}
}

func TestRunEmptyProperties(t *testing.T) {
	conf := testConfiguration()
	conf.Properties = nil

	results, err := Run(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Run() returned %d results for empty property list", len(results))
	}
}
