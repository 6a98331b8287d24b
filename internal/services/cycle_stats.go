package services

import "math"

type LengthStats struct {
	Average   float64 `json:"average"`
	Variation float64 `json:"variation"`
	Min       int     `json:"min"`
	Max       int     `json:"max"`
}

func BuildLengthStats(lengths []int, fallbackAverage int) LengthStats {
	minLength, maxLength := CycleLengthRange(lengths)
	return LengthStats{
		Average:   AverageCycleLength(lengths, fallbackAverage),
		Variation: CycleVariation(lengths),
		Min:       minLength,
		Max:       maxLength,
	}
}

func AverageCycleLength(lengths []int, fallback int) float64 {
	if len(lengths) == 0 {
		return float64(fallback)
	}
	return averageInts(lengths)
}

// CycleVariation is the population standard deviation of lengths. Fewer than
// two samples yield 0, never NaN.
func CycleVariation(lengths []int) float64 {
	if len(lengths) < 2 {
		return 0
	}
	mean := averageInts(lengths)
	var squared float64
	for _, length := range lengths {
		delta := float64(length) - mean
		squared += delta * delta
	}
	return math.Sqrt(squared / float64(len(lengths)))
}

func CycleLengthRange(lengths []int) (int, int) {
	if len(lengths) == 0 {
		return 0, 0
	}
	minLength, maxLength := lengths[0], lengths[0]
	for _, length := range lengths[1:] {
		minLength = min(minLength, length)
		maxLength = max(maxLength, length)
	}
	return minLength, maxLength
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func roundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

func percentOf(count int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}
