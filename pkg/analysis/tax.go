package analysis

import "math"

// FallbackLevelOfAssessment is used when no market value could be extracted.
// 10% is the typical jurisdiction assessment ratio for these property classes.
const FallbackLevelOfAssessment = 0.10

// EstimateTaxes computes the estimated annual tax bill from the aggregated
// assessed value, the tax rate percentage and the equalization factor,
// rounded to the nearest whole dollar.
func EstimateTaxes(assessedValue int64, taxRate, eqFactor float64) int64 {
	return int64(math.Round(float64(assessedValue) * (taxRate / 100) * eqFactor))
}

// LevelOfAssessment returns the assessed-to-market ratio, or the fallback
// constant when the market value is zero.
func LevelOfAssessment(assessedValue, marketValue int64) float64 {
	if marketValue <= 0 {
		return FallbackLevelOfAssessment
	}
	return float64(assessedValue) / float64(marketValue)
}
