package utils

import "math"

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	rounded := math.Round(value*100) / 100
	if rounded == 0 {
		// -0 печатается как "-0"
		return 0
	}
	return rounded
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// Percent переводит долю (0.037) в проценты (3.7)
func Percent(rate float64) float64 {
	return rate * 100
}
