package aggregate

import "math"

// minCorrelationPoints is the smallest sample that yields a defined r.
const minCorrelationPoints = 2

// Pearson returns the correlation coefficient between two paired numeric
// sequences, rounded to 3 decimals. It is exactly 0 when fewer than two
// pairs are supplied, when the sequences disagree in length, or when
// either sequence has zero variance.
func Pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n != len(ys) || n < minCorrelationPoints {
		return 0
	}

	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
		sumYY += ys[i] * ys[i]
	}

	fn := float64(n)
	denom := math.Sqrt((fn*sumXX - sumX*sumX) * (fn*sumYY - sumY*sumY))
	if denom == 0 {
		return 0
	}
	return Round3((fn*sumXY - sumX*sumY) / denom)
}

// Round3 rounds to 3 decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
