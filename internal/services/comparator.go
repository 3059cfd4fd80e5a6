package services

import (
	"github.com/shopspring/decimal"

	"lifeos-finance/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// comparePeriods relates the current period's total shared spending to the
// previous one. When the previous total is zero the relative change is
// undefined, so PercentChange stays nil and the trend falls back to the sign
// of the current total.
func comparePeriods(previousLabel string, previousTotal, currentTotal, epsilon decimal.Decimal) models.PeriodComparison {
	difference := currentTotal.Sub(previousTotal)

	comparison := models.PeriodComparison{
		PreviousLabel: previousLabel,
		PreviousTotal: previousTotal,
		CurrentTotal:  currentTotal,
		Difference:    difference.RoundBank(2),
	}

	if previousTotal.IsZero() {
		switch {
		case currentTotal.IsPositive():
			comparison.Trend = models.TrendRising
		case currentTotal.IsNegative():
			comparison.Trend = models.TrendFalling
		default:
			comparison.Trend = models.TrendStable
		}
		return comparison
	}

	percent := difference.Div(previousTotal).Mul(oneHundred).RoundBank(2)
	comparison.PercentChange = &percent

	switch {
	case difference.GreaterThan(epsilon):
		comparison.Trend = models.TrendRising
	case difference.LessThan(epsilon.Neg()):
		comparison.Trend = models.TrendFalling
	default:
		comparison.Trend = models.TrendStable
	}

	return comparison
}
