// Package mortgage provides the affordability calculations for a single
// property purchase: amortized payment, interest breakdown, tax amounts,
// one-time and recurring costs, and debt-service ratios.
package mortgage

import (
	"math"

	"github.com/jfcarrier/mortgage-compare/pkg/constants"
	"github.com/jfcarrier/mortgage-compare/pkg/landtax"
	"github.com/jfcarrier/mortgage-compare/pkg/mathutil"
)

// Listing holds display-only property metadata. None of these fields
// participate in any arithmetic.
type Listing struct {
	Description string
	Address     string
	Link        string
	Bedrooms    int
	Bathrooms   int
	YearBuilt   int
}

// PropertyTerms holds one property's physical and tax attributes. Tax
// rates are percentages, converted to decimal fractions inside Calculate.
type PropertyTerms struct {
	Value               float64
	AreaSqft            float64
	CondoFees           float64
	YearlyHomeInsurance float64
	PropertyTaxRate     float64 // percentage
	SchoolTaxRate       float64 // percentage
	Brackets            []landtax.Bracket
}

// LoanTerms holds the loan and borrower parameters shared across all
// properties in a batch. InterestRate is an annual percentage.
type LoanTerms struct {
	DownPayment        float64
	InterestRate       float64 // annual percentage
	Years              int
	MonthlySalary      float64
	MonthlyDebtPayment float64
}

// ClosingCosts holds the flat one-time costs shared across all properties.
type ClosingCosts struct {
	NotaryCost     float64
	InspectionCost float64
}

// CalculatedMortgage is the derived result for one property. All monetary
// fields are rounded to two decimals; LandTransferTaxRate is a decimal
// fraction rounded to seven decimals. Values are never mutated after
// Calculate returns.
type CalculatedMortgage struct {
	LoanAmount           float64
	MonthlyPayment       float64
	MonthlyInterest      float64
	YearlyInterest       float64
	TotalInterest        float64
	LandTransferTaxRate  float64 // decimal fraction
	LandTransferTax      float64
	TotalOneTimeCosts    float64
	CashToClose          float64
	YearlyPropertyTax    float64
	MonthlyPropertyTax   float64
	YearlySchoolTax      float64
	MonthlySchoolTax     float64
	YearlyHomeInsurance  float64
	MonthlyHomeInsurance float64
	TotalYearlyCosts     float64
	TotalMonthlyCosts    float64
	PricePerSqft         float64
	GDSRatio             float64
	TDSRatio             float64
}

// CalculateMonthlyPayment calculates the fixed monthly payment for a loan
// using the standard amortization formula. The rate is an annual decimal
// fraction; a zero rate degenerates to straight-line repayment.
func CalculateMonthlyPayment(loanAmount, yearlyRateDecimal float64, termMonths int) float64 {
	if yearlyRateDecimal == 0 {
		return loanAmount / float64(termMonths)
	}

	monthlyRate := yearlyRateDecimal / constants.MonthsPerYear
	power := math.Pow(1.00+monthlyRate, float64(termMonths))
	return loanAmount * monthlyRate * power / (power - 1.00)
}

// CalculateYearlyTax calculates a yearly tax amount from a property value
// and a tax rate expressed as a decimal fraction.
func CalculateYearlyTax(value, rateDecimal float64) float64 {
	return value * rateDecimal
}

// Calculate derives every affordability metric for one property. It
// assumes its input already passed validation; the zero-area and
// zero-salary guards below only keep the function total when called
// outside that guarantee. The only error is an empty bracket list, which
// the validator also rejects up front.
func Calculate(property PropertyTerms, loan LoanTerms, costs ClosingCosts) (CalculatedMortgage, error) {
	var m CalculatedMortgage

	// Convert percentages to decimal fractions at the boundary.
	interestRateDecimal := mathutil.PercentToDecimal(loan.InterestRate)
	propertyTaxDecimal := mathutil.PercentToDecimal(property.PropertyTaxRate)
	schoolTaxDecimal := mathutil.PercentToDecimal(property.SchoolTaxRate)

	rate, err := landtax.ResolveRate(property.Value, property.Brackets)
	if err != nil {
		return m, err
	}
	tax, err := landtax.TaxAmount(property.Value, property.Brackets)
	if err != nil {
		return m, err
	}
	m.LandTransferTaxRate = mathutil.RoundRate(rate)
	m.LandTransferTax = mathutil.Round(tax)
	m.TotalOneTimeCosts = mathutil.Round(costs.NotaryCost + costs.InspectionCost + m.LandTransferTax)
	m.CashToClose = mathutil.Round(loan.DownPayment + m.TotalOneTimeCosts)

	m.YearlyPropertyTax = mathutil.Round(CalculateYearlyTax(property.Value, propertyTaxDecimal))
	m.MonthlyPropertyTax = mathutil.Round(m.YearlyPropertyTax / constants.MonthsPerYear)
	m.YearlySchoolTax = mathutil.Round(CalculateYearlyTax(property.Value, schoolTaxDecimal))
	m.MonthlySchoolTax = mathutil.Round(m.YearlySchoolTax / constants.MonthsPerYear)
	m.YearlyHomeInsurance = mathutil.Round(property.YearlyHomeInsurance)
	m.MonthlyHomeInsurance = mathutil.Round(m.YearlyHomeInsurance / constants.MonthsPerYear)
	m.TotalYearlyCosts = mathutil.Round(m.YearlyPropertyTax + m.YearlySchoolTax + m.YearlyHomeInsurance)

	months := loan.Years * constants.MonthsPerYear
	m.LoanAmount = mathutil.Round(property.Value - loan.DownPayment)
	m.MonthlyPayment = mathutil.Round(CalculateMonthlyPayment(m.LoanAmount, interestRateDecimal, months))
	monthlyRate := interestRateDecimal / constants.MonthsPerYear
	m.MonthlyInterest = mathutil.Round(m.LoanAmount * monthlyRate)
	m.YearlyInterest = mathutil.Round(m.MonthlyInterest * constants.MonthsPerYear)
	m.TotalInterest = mathutil.Round(m.MonthlyPayment*float64(months) - m.LoanAmount)

	if property.AreaSqft > 0 {
		m.PricePerSqft = mathutil.Round(property.Value / property.AreaSqft)
	}

	m.TotalMonthlyCosts = mathutil.Round(m.MonthlyPayment + property.CondoFees +
		m.MonthlyPropertyTax + m.MonthlySchoolTax + m.MonthlyHomeInsurance)

	if loan.MonthlySalary > 0 {
		m.GDSRatio = mathutil.Round(mathutil.CalculatePercentage(m.TotalMonthlyCosts, loan.MonthlySalary))
		m.TDSRatio = mathutil.Round(mathutil.CalculatePercentage(m.TotalMonthlyCosts+loan.MonthlyDebtPayment, loan.MonthlySalary))
	}

	return m, nil
}
