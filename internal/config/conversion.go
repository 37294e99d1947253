// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/jfcarrier/mortgage-compare/pkg/landtax"
	"github.com/jfcarrier/mortgage-compare/pkg/mortgage"
)

// ToPropertyTerms converts an internal config.Property to the calculation
// input type, preserving bracket order.
func (p *Property) ToPropertyTerms() mortgage.PropertyTerms {
	terms := mortgage.PropertyTerms{
		Value:               p.Value,
		AreaSqft:            p.AreaSqft,
		CondoFees:           p.CondoFees,
		YearlyHomeInsurance: p.YearlyHomeInsurance,
		PropertyTaxRate:     p.PropertyTax,
		SchoolTaxRate:       p.SchoolTax,
	}

	for _, bracket := range p.LandTransferTaxBrackets {
		terms.Brackets = append(terms.Brackets, landtax.Bracket{
			Threshold: bracket.Threshold,
			Rate:      bracket.Rate,
		})
	}

	return terms
}

// ToListing extracts the display-only metadata of a property.
func (p *Property) ToListing() mortgage.Listing {
	return mortgage.Listing{
		Description: p.Description,
		Address:     p.Address,
		Link:        p.Link,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		YearBuilt:   p.YearBuilt,
	}
}

// ToLoanTerms converts the shared loan parameters to the calculation
// input type.
func (l *LoanParameters) ToLoanTerms() mortgage.LoanTerms {
	return mortgage.LoanTerms{
		DownPayment:        l.DownPayment,
		InterestRate:       l.InterestRate,
		Years:              l.YearsOfLoan,
		MonthlySalary:      l.MonthlySalary,
		MonthlyDebtPayment: l.MonthlyDebtPayment,
	}
}

// ToClosingCosts converts the shared one-time expenses to the calculation
// input type.
func (n *NecessaryExpenses) ToClosingCosts() mortgage.ClosingCosts {
	return mortgage.ClosingCosts{
		NotaryCost:     n.NotaryCost,
		InspectionCost: n.InspectionCost,
	}
}
