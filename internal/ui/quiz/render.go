package quiz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"examtrainer/internal/exam"
	"examtrainer/internal/ui"
)

var (
	colorHeading = lipgloss.Color("33")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("244")
)

// renderWelcome renders the start screen.
func renderWelcome(title string, noColor bool) string {
	lines := []string{heading(ui.Welcome, noColor)}
	if title != "" {
		lines = append(lines, stylize(title, noColor, colorMuted))
	}
	lines = append(lines, "", ui.StartHint)
	return strings.Join(lines, "\n")
}

// renderQuestion renders the question text, the choice list, and the image.
func renderQuestion(view exam.View, cursor int, image string, noColor bool) string {
	lines := []string{heading(view.Question.Text, noColor), ""}
	for i, choice := range view.Question.Choice {
		pointer := "  "
		if i == cursor {
			pointer = "> "
		}
		radio := "( )"
		if i == view.Selected {
			radio = "(•)"
		}
		lines = append(lines, pointer+radio+" "+ui.ChoiceLabel(i)+". "+choice)
	}
	if image != "" {
		lines = append(lines, "", image)
	}
	if !view.SubmitEnabled {
		lines = append(lines, "", stylize(ui.ChooseAnswer, noColor, colorWrong))
	}
	return strings.Join(lines, "\n")
}

// renderFeedback renders the correctness of the submitted answer.
func renderFeedback(view exam.View, noColor bool) string {
	if view.Feedback.Correct {
		return strings.Join([]string{
			heading(view.Question.Text, noColor),
			"",
			emphasize(ui.Correct, noColor, colorCorrect),
		}, "\n")
	}
	return strings.Join([]string{
		heading(view.Question.Text, noColor),
		"",
		emphasize(ui.Incorrect, noColor, colorWrong),
		stylize(ui.SelectedAnswer, noColor, colorWrong),
		"  " + view.Feedback.SelectedText,
		stylize(ui.CorrectAnswer, noColor, colorCorrect),
		"  " + view.Feedback.AnswerText,
	}, "\n")
}

// renderCompleted renders the final score screen.
func renderCompleted(view exam.View, noColor bool) string {
	return strings.Join([]string{
		emphasize(ui.AllAnswered, noColor, colorCorrect),
		"",
		ui.ScoreLine(view),
	}, "\n")
}

// renderScore renders the running score line.
func renderScore(view exam.View, noColor bool) string {
	return stylize(ui.ScoreLine(view), noColor, colorMuted)
}

// renderProgress renders answered questions against the bank size.
func renderProgress(bar progress.Model, view exam.View, noColor bool) string {
	counter := strconv.Itoa(view.Score.Answered) + "/" + strconv.Itoa(view.Score.Total)
	if noColor || view.Score.Total == 0 {
		return "Progress: " + counter
	}
	return bar.ViewAs(float64(view.Score.Answered)/float64(view.Score.Total)) + " " + counter
}

func heading(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorHeading).Render(text)
}

func emphasize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
