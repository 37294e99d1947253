// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/jfcarrier/mortgage-compare/pkg/mortgage"
)

// ErrorList accumulates validation violations so that every problem in a
// configuration is reported together instead of aborting at the first one.
type ErrorList struct {
	messages []string
}

// Addf records a violation message.
func (e *ErrorList) Addf(format string, args ...interface{}) {
	e.messages = append(e.messages, fmt.Sprintf(format, args...))
}

// Messages returns all recorded violations; empty means valid.
func (e *ErrorList) Messages() []string {
	return e.messages
}

// Err converts the accumulated violations into a single aggregate error,
// or nil when none were recorded.
func (e *ErrorList) Err() error {
	return AggregateError(e.messages)
}

// AggregateError builds one error carrying every violation message, or
// nil for an empty list.
func AggregateError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return fmt.Errorf("loan configuration validation failed:\n  - %s",
		strings.Join(messages, "\n  - "))
}

// ValidateBatch checks the loan parameters, necessary expenses, and every
// property for semantic validity and internal consistency. All checks run;
// nothing short-circuits. The returned slice holds every violation found,
// empty when the configuration is valid.
func ValidateBatch(properties []mortgage.PropertyTerms, loan mortgage.LoanTerms, costs mortgage.ClosingCosts) []string {
	var errs ErrorList

	if loan.InterestRate < 0 || loan.InterestRate > 100 {
		errs.Addf("interest rate must be between 0 and 100%%, got %v", loan.InterestRate)
	}
	if loan.Years <= 0 {
		errs.Addf("loan term must be positive, got %d", loan.Years)
	}
	if loan.DownPayment < 0 {
		errs.Addf("down payment cannot be negative, got %v", loan.DownPayment)
	}
	if loan.MonthlySalary <= 0 {
		errs.Addf("monthly salary must be positive, got %v", loan.MonthlySalary)
	}
	if loan.MonthlyDebtPayment < 0 {
		errs.Addf("monthly debt payment cannot be negative, got %v", loan.MonthlyDebtPayment)
	}

	if costs.NotaryCost < 0 {
		errs.Addf("notary cost cannot be negative, got %v", costs.NotaryCost)
	}
	if costs.InspectionCost < 0 {
		errs.Addf("inspection cost cannot be negative, got %v", costs.InspectionCost)
	}

	for i, property := range properties {
		validateProperty(&errs, i, property, loan)
	}

	return errs.Messages()
}

// validateProperty records the per-property and cross-field violations for
// one property, prefixing each message with the 1-based property number.
func validateProperty(errs *ErrorList, index int, property mortgage.PropertyTerms, loan mortgage.LoanTerms) {
	prefix := fmt.Sprintf("property %d", index+1)

	if property.Value <= 0 {
		errs.Addf("%s: property value must be positive, got %v", prefix, property.Value)
	}
	if property.PropertyTaxRate < 0 {
		errs.Addf("%s: property tax rate cannot be negative, got %v", prefix, property.PropertyTaxRate)
	}
	if property.SchoolTaxRate < 0 {
		errs.Addf("%s: school tax rate cannot be negative, got %v", prefix, property.SchoolTaxRate)
	}
	if property.CondoFees < 0 {
		errs.Addf("%s: condo fees cannot be negative, got %v", prefix, property.CondoFees)
	}
	if property.YearlyHomeInsurance < 0 {
		errs.Addf("%s: home insurance cannot be negative, got %v", prefix, property.YearlyHomeInsurance)
	}
	if property.AreaSqft <= 0 {
		errs.Addf("%s: area (sqft) must be positive, got %v", prefix, property.AreaSqft)
	}

	if len(property.Brackets) == 0 {
		errs.Addf("%s: land transfer tax brackets must be configured (bracket list is empty)", prefix)
	} else {
		for i, bracket := range property.Brackets {
			if bracket.Rate < 0 {
				errs.Addf("%s: land transfer tax bracket %d rate cannot be negative, got %v", prefix, i, bracket.Rate)
			}
			if bracket.Threshold < 0 {
				errs.Addf("%s: land transfer tax bracket %d threshold cannot be negative, got %v", prefix, i, bracket.Threshold)
			}
			if i > 0 {
				previous := property.Brackets[i-1]
				if previous.Threshold <= bracket.Threshold {
					errs.Addf("%s: land transfer tax brackets must be ordered from highest threshold to lowest; bracket %d threshold (%v) must be greater than bracket %d threshold (%v)",
						prefix, i-1, previous.Threshold, i, bracket.Threshold)
				}
			}
		}
	}

	if loan.DownPayment >= property.Value {
		errs.Addf("%s: down payment (%v) cannot be >= property value (%v)", prefix, loan.DownPayment, property.Value)
	}
}
