// Package ui holds the screen text shared by the interactive and plain front ends.
package ui

import "examtrainer/internal/exam"

const (
	Welcome        = "Welcome to the exam platform!"
	StartHint      = "Press enter to start."
	ChooseAnswer   = "Choose an answer"
	Correct        = "Correct!"
	Incorrect      = "Incorrect!"
	SelectedAnswer = "Selected answer:"
	CorrectAnswer  = "Correct answer:"
	AllAnswered    = "You answered all the questions! Well done!"
	NoSkip         = "This is the last unanswered question; it cannot be skipped."
)

// ScoreLine prefixes the running score for display.
func ScoreLine(view exam.View) string {
	return "Correctly answered questions: " + view.ScoreLine
}

// ChoiceLabel returns the one-based key shown next to a choice.
func ChoiceLabel(index int) string {
	return string(rune('1' + index))
}
