package aggregate

import (
	"fmt"
	"strings"
)

// Pct3 renders wins/(wins+losses+ties) as a 3-decimal string with a
// leading dot for sub-1 values: ".529", "1.000", and ".000" for zero
// games. This is the literal rate the upstream consumers were built
// against; ties count as full losses in the denominator, not half-wins.
func Pct3(wins, losses, ties int) string {
	total := wins + losses + ties
	if total == 0 {
		return ".000"
	}
	return FormatRate3(float64(wins) / float64(total))
}

// FormatRate3 renders a rate in [0, 1] to 3 decimals, dropping the
// leading zero of sub-1 values (".667") the way league tables print
// winning percentage.
func FormatRate3(rate float64) string {
	s := fmt.Sprintf("%.3f", rate)
	if strings.HasPrefix(s, "0.") {
		return s[1:]
	}
	return s
}

// Percent1 renders hits/total as a one-decimal percentage ("56.1%"),
// or "0.0%" when total is zero.
func Percent1(hits, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(hits)/float64(total))
}
