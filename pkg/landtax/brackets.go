// Package landtax resolves land transfer tax rates from value-based brackets.
package landtax

import (
	"errors"

	"github.com/jfcarrier/mortgage-compare/pkg/mathutil"
)

// ErrNoBrackets indicates an empty bracket list reached the resolver. The
// validator rejects empty lists up front, so hitting this means the caller
// skipped validation.
var ErrNoBrackets = errors.New("no land transfer tax brackets configured")

// Bracket pairs a property-value threshold with the tax rate, expressed as
// a percentage, that applies above it. Bracket lists are ordered from
// highest threshold to lowest.
type Bracket struct {
	Threshold float64
	Rate      float64
}

// ResolveRate returns the applicable tax rate as a decimal fraction: the
// rate of the first bracket whose threshold the value strictly exceeds.
// A value exactly at a threshold does not exceed it and falls through to
// the next bracket. When no threshold is exceeded the last (lowest)
// bracket's rate applies; existing configurations depend on this fallback,
// so it is preserved rather than treated as an error.
func ResolveRate(value float64, brackets []Bracket) (float64, error) {
	if len(brackets) == 0 {
		return 0, ErrNoBrackets
	}
	for _, bracket := range brackets {
		if value > bracket.Threshold {
			return mathutil.PercentToDecimal(bracket.Rate), nil
		}
	}
	return mathutil.PercentToDecimal(brackets[len(brackets)-1].Rate), nil
}

// TaxAmount returns the land transfer tax owed on a purchase at the given
// property value.
func TaxAmount(value float64, brackets []Bracket) (float64, error) {
	rate, err := ResolveRate(value, brackets)
	if err != nil {
		return 0, err
	}
	return value * rate, nil
}
