package tariff

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCurrency rounds v to two decimal places, halves away from zero.
// The shortest decimal form of v is rounded, not its binary expansion.
func RoundCurrency(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
