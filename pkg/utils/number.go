package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda para duas casas decimais (meio para longe do zero)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
