// Package typing compares typed input with a reference text.
package typing

import (
	"time"

	"github.com/verte-zerg/pytype/internal/model"
	"github.com/verte-zerg/pytype/internal/stats"
)

// Classify returns one state per reference rune and the number of Incorrect
// entries. Runes typed past the end of the reference are not classified.
func Classify(reference, typed []rune) ([]model.CharState, int) {
	classes := make([]model.CharState, len(reference))
	errors := 0
	for i, want := range reference {
		switch {
		case i >= len(typed):
			classes[i] = model.Pending
		case typed[i] == want:
			classes[i] = model.Correct
		default:
			classes[i] = model.Incorrect
			errors++
		}
	}
	return classes, errors
}

// Evaluate computes classification and metrics from scratch. A nil startedAt
// means no keystroke has been seen yet.
func Evaluate(reference, typed string, startedAt *time.Time, now time.Time) model.Result {
	return evaluate([]rune(reference), []rune(typed), startedAt, now)
}

func evaluate(reference, typed []rune, startedAt *time.Time, now time.Time) model.Result {
	classes, errors := Classify(reference, typed)
	var elapsed time.Duration
	if startedAt != nil {
		elapsed = now.Sub(*startedAt)
	}
	return model.Result{
		Classes:  classes,
		Errors:   errors,
		Typed:    len(typed),
		Speed:    stats.Speed(len(typed), elapsed, startedAt != nil),
		Accuracy: stats.Accuracy(len(typed), errors),
	}
}
