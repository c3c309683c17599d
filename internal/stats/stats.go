// Package stats contains metric calculations and report rendering.
package stats

import (
	"math"
	"time"
)

// charsPerWord is the standard typing-test word length.
const charsPerWord = 5.0

// Speed returns words per minute for typed runes over elapsed time.
// It is zero until the first keystroke has been seen or while no time has passed.
func Speed(typed int, elapsed time.Duration, started bool) int {
	if !started || elapsed <= 0 {
		return 0
	}
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(typed) / charsPerWord / minutes))
}

// Accuracy returns the rounded percentage of typed runes that are not errors.
func Accuracy(typed, errors int) int {
	if typed <= 0 {
		return 100
	}
	acc := int(math.Round(float64(typed-errors) / float64(typed) * 100))
	if acc < 0 {
		return 0
	}
	return acc
}
