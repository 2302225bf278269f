package exam

import "examtrainer/internal/bank"

// Feedback describes the outcome of a submitted answer.
type Feedback struct {
	Correct      bool
	SelectedText string
	AnswerText   string
}

// View is a read-only snapshot of everything a presentation layer draws.
type View struct {
	Phase Phase
	// QuestionIndex is -1 when no question is on screen.
	QuestionIndex int
	Question      bank.Question
	// Selected is -1 when no choice is selected.
	Selected      int
	SubmitEnabled bool
	SkipEnabled   bool
	Feedback      Feedback
	Score         Score
	ScoreLine     string
}

// View returns the current snapshot.
func (s *Session) View() View {
	score := s.Stats()
	view := View{
		Phase:         s.phase,
		QuestionIndex: -1,
		Selected:      s.selected,
		SubmitEnabled: s.CanSubmit(),
		SkipEnabled:   s.CanSkip(),
		Score:         score,
		ScoreLine:     score.String(),
	}
	index, ok := s.Current()
	if !ok {
		return view
	}
	question, _ := s.bank.Question(index)
	view.QuestionIndex = index
	view.Question = question
	if s.phase == AnswerRevealed && s.selected != noSelection {
		view.Feedback = Feedback{
			Correct:      question.IsCorrect(s.selected),
			SelectedText: question.Choice[s.selected],
			AnswerText:   question.Choice[question.Answer],
		}
	}
	return view
}
