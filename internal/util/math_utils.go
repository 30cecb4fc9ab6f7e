package util

import "math"

// Percentage returns part/whole as a percentage rounded to one decimal.
// A zero whole yields 0.
func Percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(part/whole*1000) / 10
}
