// Package batch runs the validate-then-calculate pipeline over every
// configured property.
package batch

import (
	"fmt"

	"github.com/jfcarrier/mortgage-compare/internal/config"
	"github.com/jfcarrier/mortgage-compare/pkg/mortgage"
	"github.com/jfcarrier/mortgage-compare/pkg/validation"
	"go.uber.org/zap"
)

// Run validates the configuration and computes the affordability metrics
// for each property. A validation failure aborts the whole batch with a
// single aggregate error carrying every violation; no partial results are
// produced. Each property's calculation is independent of the others.
func Run(logger *zap.Logger, conf config.Configuration) ([]mortgage.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	properties := make([]mortgage.PropertyTerms, len(conf.Properties))
	for i := range conf.Properties {
		properties[i] = conf.Properties[i].ToPropertyTerms()
	}
	loan := conf.LoanParameters.ToLoanTerms()
	costs := conf.NecessaryExpenses.ToClosingCosts()

	if messages := validation.ValidateBatch(properties, loan, costs); len(messages) > 0 {
		return nil, validation.AggregateError(messages)
	}

	results := make([]mortgage.Result, 0, len(properties))
	for i, property := range properties {
		calculated, err := mortgage.Calculate(property, loan, costs)
		if err != nil {
			return nil, fmt.Errorf("property %d: %w", i+1, err)
		}
		logger.Debug(fmt.Sprintf("property %d: monthly payment %.2f, total monthly costs %.2f, GDS %.2f%%, TDS %.2f%%",
			i+1, calculated.MonthlyPayment, calculated.TotalMonthlyCosts, calculated.GDSRatio, calculated.TDSRatio),
			zap.String("op", "batch.Run"),
		)
		results = append(results, calculated.Flatten(conf.Properties[i].ToListing(), property, loan, costs))
	}

	return results, nil
}
