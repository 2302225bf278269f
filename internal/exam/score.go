package exam

import "fmt"

// Score is the running tally of a session.
type Score struct {
	Correct  int
	Answered int
	Total    int
}

// Percent returns the share of correct answers, or 0 when nothing was answered.
func Percent(correct, answered int) float64 {
	if answered == 0 {
		return 0
	}
	return float64(correct) / float64(answered) * 100
}

// ScoreLine formats a tally as "{correct} of {answered} ({percent}%)".
func ScoreLine(correct, answered int) string {
	return fmt.Sprintf("%d of %d (%.2f%%)", correct, answered, Percent(correct, answered))
}

// Percent returns the share of correct answers.
func (s Score) Percent() float64 {
	return Percent(s.Correct, s.Answered)
}

// String returns the score line.
func (s Score) String() string {
	return ScoreLine(s.Correct, s.Answered)
}
