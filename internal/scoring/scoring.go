// Package scoring turns nine PHQ-9 answers into a total and a severity band.
// It is pure: no I/O, no clock, no randomness.
package scoring

import (
	"fmt"

	"github.com/dmitrijs2005/aroha/internal/common"
)

const (
	// ItemCount is the number of questions in the PHQ-9.
	ItemCount = 9
	// MinAnswer and MaxAnswer bound a single answer.
	MinAnswer = 0
	MaxAnswer = 3
	// MaxTotal is the highest reachable total.
	MaxTotal = ItemCount * MaxAnswer

	// NudgeThreshold is the lowest total at which the UI suggests follow-up.
	NudgeThreshold = 10
	// selfHarmItem is the zero-based index of item 9.
	selfHarmItem = 8
)

// ErrInvalidInput is returned for answers that are not nine values in [0,3].
var ErrInvalidInput = fmt.Errorf("phq-9: %w", common.ErrInvalidInput)

// Result is the outcome of scoring one questionnaire.
type Result struct {
	Total    int
	Severity Severity
}

// Score validates answers and returns their total and severity.
func Score(answers []int) (Result, error) {
	if err := Validate(answers); err != nil {
		return Result{}, err
	}

	total := 0
	for _, a := range answers {
		total += a
	}

	return Result{Total: total, Severity: SeverityForTotal(total)}, nil
}

// Validate checks the shape of answers without scoring them.
func Validate(answers []int) error {
	if len(answers) != ItemCount {
		return fmt.Errorf("%w: want %d answers, got %d", ErrInvalidInput, ItemCount, len(answers))
	}
	for i, a := range answers {
		if a < MinAnswer || a > MaxAnswer {
			return fmt.Errorf("%w: answer %d is %d, want %d..%d", ErrInvalidInput, i+1, a, MinAnswer, MaxAnswer)
		}
	}
	return nil
}

// ShouldShowNudge reports whether the total warrants a gentle prompt to seek
// support (moderate or worse).
func ShouldShowNudge(total int) bool {
	return total >= NudgeThreshold
}

// ShouldEscalate reports whether the result warrants urgent-help resources:
// a severe total, or any endorsement of item 9 (thoughts of self-harm).
func ShouldEscalate(total int, answers []int) bool {
	if SeverityForTotal(total) == Severe {
		return true
	}
	return len(answers) == ItemCount && answers[selfHarmItem] > 0
}
