package validation

import (
	"strings"
	"testing"

	"github.com/jfcarrier/mortgage-compare/pkg/landtax"
	"github.com/jfcarrier/mortgage-compare/pkg/mortgage"
)

func validProperty() mortgage.PropertyTerms {
	return mortgage.PropertyTerms{
		Value:               300000,
		AreaSqft:            900,
		CondoFees:           300,
		YearlyHomeInsurance: 1200,
		PropertyTaxRate:     0.5,
		SchoolTaxRate:       0.1,
		Brackets: []landtax.Bracket{
			{Threshold: 200000, Rate: 1.5},
			{Threshold: 0, Rate: 0.5},
		},
	}
}

func validLoan() mortgage.LoanTerms {
	return mortgage.LoanTerms{
		DownPayment:        60000,
		InterestRate:       5.0,
		Years:              25,
		MonthlySalary:      6000,
		MonthlyDebtPayment: 200,
	}
}

func validCosts() mortgage.ClosingCosts {
	return mortgage.ClosingCosts{NotaryCost: 1500, InspectionCost: 500}
}

func TestValidateBatchValid(t *testing.T) {
	messages := ValidateBatch([]mortgage.PropertyTerms{validProperty()}, validLoan(), validCosts())
	if len(messages) != 0 {
		t.Errorf("ValidateBatch() on valid config = %v, expected no messages", messages)
	}
}

func TestValidateBatchLoanChecks(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*mortgage.LoanTerms, *mortgage.ClosingCosts)
		fragment string
	}{
		{
			name:     "Interest rate above 100",
			mutate:   func(l *mortgage.LoanTerms, c *mortgage.ClosingCosts) { l.InterestRate = 101 },
			fragment: "interest rate must be between 0 and 100%",
		},
		{
			name:     "Negative interest rate",
			mutate:   func(l *mortgage.LoanTerms, c *mortgage.ClosingCosts) { l.InterestRate = -1 },
			fragment: "interest rate must be between 0 and 100%",
		},
		{
			name:     "Zero loan term",
			mutate:   func(l *mortgage.LoanTerms, c *mortgage.ClosingCosts) { l.Years = 0 },
			fragment: "loan term must be positive",
		},
		{
			name:     "Negative down payment",
			mutate:   func(l *mortgage.LoanTerms, c *mortgage.ClosingCosts) { l.DownPayment = -1 },
			fragment: "down payment cannot be negative",
		},
		{
			name:     "Zero salary",
			mutate:   func(l *mortgage.LoanTerms, c *mortgage.ClosingCosts) { l.MonthlySalary = 0 },
			fragment: "monthly salary must be positive",
		},
		{
			name:     "Negative debt payment",
			mutate:   func(l *mortgage.LoanTerms, c *mortgage.ClosingCosts) { l.MonthlyDebtPayment = -50 },
			fragment: "monthly debt payment cannot be negative",
		},
		{
			name:     "Negative notary cost",
			mutate:   func(l *mortgage.LoanTerms, c *mortgage.ClosingCosts) { c.NotaryCost = -1 },
			fragment: "notary cost cannot be negative",
		},
		{
			name:     "Negative inspection cost",
			mutate:   func(l *mortgage.LoanTerms, c *mortgage.ClosingCosts) { c.InspectionCost = -1 },
			fragment: "inspection cost cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := validLoan()
			costs := validCosts()
			tt.mutate(&loan, &costs)

			messages := ValidateBatch([]mortgage.PropertyTerms{validProperty()}, loan, costs)
			if len(messages) != 1 {
				t.Fatalf("ValidateBatch() = %v, expected exactly one message", messages)
			}
			if !strings.Contains(messages[0], tt.fragment) {
				t.Errorf("message %q does not contain %q", messages[0], tt.fragment)
			}
		})
	}
}

func TestValidateBatchPropertyChecks(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*mortgage.PropertyTerms)
		fragment string
	}{
		{
			name:     "Non-positive value",
			mutate:   func(p *mortgage.PropertyTerms) { p.Value = 0 },
			fragment: "property value must be positive",
		},
		{
			name:     "Negative property tax rate",
			mutate:   func(p *mortgage.PropertyTerms) { p.PropertyTaxRate = -0.5 },
			fragment: "property tax rate cannot be negative",
		},
		{
			name:     "Negative school tax rate",
			mutate:   func(p *mortgage.PropertyTerms) { p.SchoolTaxRate = -0.1 },
			fragment: "school tax rate cannot be negative",
		},
		{
			name:     "Negative condo fees",
			mutate:   func(p *mortgage.PropertyTerms) { p.CondoFees = -300 },
			fragment: "condo fees cannot be negative",
		},
		{
			name:     "Negative home insurance",
			mutate:   func(p *mortgage.PropertyTerms) { p.YearlyHomeInsurance = -1 },
			fragment: "home insurance cannot be negative",
		},
		{
			name:     "Non-positive area",
			mutate:   func(p *mortgage.PropertyTerms) { p.AreaSqft = 0 },
			fragment: "area (sqft) must be positive",
		},
		{
			name:     "Empty bracket list",
			mutate:   func(p *mortgage.PropertyTerms) { p.Brackets = nil },
			fragment: "land transfer tax brackets must be configured",
		},
		{
			name: "Negative bracket rate",
			mutate: func(p *mortgage.PropertyTerms) {
				p.Brackets = []landtax.Bracket{{Threshold: 0, Rate: -1}}
			},
			fragment: "bracket 0 rate cannot be negative",
		},
		{
			name: "Negative bracket threshold",
			mutate: func(p *mortgage.PropertyTerms) {
				p.Brackets = []landtax.Bracket{{Threshold: -100, Rate: 1}}
			},
			fragment: "bracket 0 threshold cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			property := validProperty()
			tt.mutate(&property)

			messages := ValidateBatch([]mortgage.PropertyTerms{property}, validLoan(), validCosts())
			if len(messages) == 0 {
				t.Fatal("ValidateBatch() returned no messages, expected a violation")
			}
			found := false
			for _, message := range messages {
				if strings.Contains(message, tt.fragment) {
					found = true
				}
				if !strings.Contains(message, "property 1") {
					t.Errorf("message %q missing property prefix", message)
				}
			}
			if !found {
				t.Errorf("messages %v do not contain %q", messages, tt.fragment)
			}
		})
	}
}

func TestValidateBatchUnorderedBrackets(t *testing.T) {
	property := validProperty()
	property.Brackets = []landtax.Bracket{
		{Threshold: 100, Rate: 1.0},
		{Threshold: 200, Rate: 0.5},
	}

	messages := ValidateBatch([]mortgage.PropertyTerms{property}, validLoan(), validCosts())
	if len(messages) != 1 {
		t.Fatalf("ValidateBatch() = %v, expected exactly one message", messages)
	}
	message := messages[0]
	for _, fragment := range []string{
		"ordered from highest threshold to lowest",
		"bracket 0 threshold (100)",
		"bracket 1 threshold (200)",
	} {
		if !strings.Contains(message, fragment) {
			t.Errorf("message %q does not contain %q", message, fragment)
		}
	}
}

func TestValidateBatchEqualThresholds(t *testing.T) {
	property := validProperty()
	property.Brackets = []landtax.Bracket{
		{Threshold: 100, Rate: 1.0},
		{Threshold: 100, Rate: 0.5},
	}

	messages := ValidateBatch([]mortgage.PropertyTerms{property}, validLoan(), validCosts())
	if len(messages) != 1 {
		t.Errorf("ValidateBatch() with equal thresholds = %v, expected exactly one message", messages)
	}
}

func TestValidateBatchAggregates(t *testing.T) {
	// Negative condo fees and a down payment at the property value must
	// both be reported in one pass.
	property := validProperty()
	property.CondoFees = -10
	loan := validLoan()
	loan.DownPayment = property.Value

	messages := ValidateBatch([]mortgage.PropertyTerms{property}, loan, validCosts())
	if len(messages) != 2 {
		t.Fatalf("ValidateBatch() = %v, expected exactly two messages", messages)
	}
	if !strings.Contains(messages[0], "condo fees") {
		t.Errorf("first message %q, expected condo fees violation", messages[0])
	}
	if !strings.Contains(messages[1], "cannot be >= property value") {
		t.Errorf("second message %q, expected down payment violation", messages[1])
	}
}

func TestValidateBatchCrossFieldPerProperty(t *testing.T) {
	cheap := validProperty()
	cheap.Value = 50000
	expensive := validProperty()

	messages := ValidateBatch([]mortgage.PropertyTerms{cheap, expensive}, validLoan(), validCosts())
	if len(messages) != 1 {
		t.Fatalf("ValidateBatch() = %v, expected exactly one message", messages)
	}
	if !strings.Contains(messages[0], "property 1") {
		t.Errorf("message %q should name property 1", messages[0])
	}
}

func TestAggregateError(t *testing.T) {
	if err := AggregateError(nil); err != nil {
		t.Errorf("AggregateError(nil) = %v, expected nil", err)
	}

	err := AggregateError([]string{"first violation", "second violation"})
	if err == nil {
		t.Fatal("AggregateError() = nil, expected error")
	}
	text := err.Error()
	if !strings.HasPrefix(text, "loan configuration validation failed:") {
		t.Errorf("error %q missing stable prefix", text)
	}
	if !strings.Contains(text, "first violation") || !strings.Contains(text, "second violation") {
		t.Errorf("error %q missing violations", text)
	}
}

func TestErrorList(t *testing.T) {
	var errs ErrorList
	if errs.Err() != nil {
		t.Errorf("empty ErrorList.Err() = %v, expected nil", errs.Err())
	}
	errs.Addf("value %d is bad", 42)
	if len(errs.Messages()) != 1 || errs.Messages()[0] != "value 42 is bad" {
		t.Errorf("Messages() = %v", errs.Messages())
	}
	if errs.Err() == nil {
		t.Error("ErrorList.Err() = nil after Addf, expected error")
	}
}
