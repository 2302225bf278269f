package exam

import (
	"fmt"

	"examtrainer/internal/bank"
)

const noSelection = -1

// Transition describes one applied or rejected action.
type Transition struct {
	Action   Action
	From     Phase
	To       Phase
	Question int
	Score    Score
	Err      error
}

// Observer receives every action applied to a session.
type Observer interface {
	OnTransition(Transition)
}

// Option configures a Session.
type Option func(*Session)

// WithSelector sets the selector used to draw questions.
func WithSelector(selector *Selector) Option {
	return func(s *Session) {
		if selector != nil {
			s.selector = selector
		}
	}
}

// WithObserver registers an observer for transitions.
func WithObserver(observer Observer) Option {
	return func(s *Session) {
		s.observer = observer
	}
}

// Session is the exam state machine. It is owned by a single event loop and is not
// safe for concurrent use.
type Session struct {
	bank     *bank.Bank
	selector *Selector
	observer Observer

	phase    Phase
	current  int
	selected int
	answered IndexSet
	correct  int
}

// NewSession returns a session on the welcome screen.
func NewSession(questions *bank.Bank, opts ...Option) (*Session, error) {
	if questions.Len() == 0 {
		return nil, ErrEmptyBank
	}
	s := &Session{
		bank:     questions,
		phase:    NotStarted,
		selected: noSelection,
		answered: IndexSet{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.selector == nil {
		s.selector = NewSelector(nil)
	}
	return s, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Current returns the index of the question on screen.
func (s *Session) Current() (int, bool) {
	if s.phase != AwaitingChoice && s.phase != AnswerRevealed {
		return 0, false
	}
	return s.current, true
}

// Selected returns the selected choice, if any.
func (s *Session) Selected() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// Answered returns the answered question indices in ascending order.
func (s *Session) Answered() []int {
	return s.answered.Sorted()
}

// Stats returns the running score.
func (s *Session) Stats() Score {
	return Score{Correct: s.correct, Answered: s.answered.Len(), Total: s.bank.Len()}
}

// AnsweredAll reports whether every question has been answered.
func (s *Session) AnsweredAll() bool {
	return s.phase == Completed
}

// CanSubmit reports whether Submit would be accepted.
func (s *Session) CanSubmit() bool {
	return s.phase == AwaitingChoice && s.selected != noSelection
}

// CanSkip reports whether Skip would be accepted. Skip needs an unseen question
// other than the one on screen.
func (s *Session) CanSkip() bool {
	return s.phase == AwaitingChoice && len(s.skipCandidates()) > 0
}

// Start leaves the welcome screen.
func (s *Session) Start() error { return s.Apply(Start()) }

// Select marks choice as the current selection.
func (s *Session) Select(choice int) error { return s.Apply(Select(choice)) }

// Submit records the selected choice for the current question.
func (s *Session) Submit() error { return s.Apply(Submit()) }

// Skip replaces the current question with another unseen one.
func (s *Session) Skip() error { return s.Apply(Skip()) }

// Continue moves past the answer feedback.
func (s *Session) Continue() error { return s.Apply(Continue()) }

// Restart clears progress after completion and starts again.
func (s *Session) Restart() error { return s.Apply(Restart()) }

// Apply performs action. A rejected action leaves the session unchanged.
func (s *Session) Apply(action Action) error {
	from := s.phase
	var err error
	switch action.Kind {
	case ActionStart:
		err = s.start()
	case ActionSelect:
		err = s.selectChoice(action.Choice)
	case ActionSubmit:
		err = s.submit()
	case ActionSkip:
		err = s.skip()
	case ActionContinue:
		err = s.cont()
	case ActionRestart:
		err = s.restart()
	default:
		err = fmt.Errorf("%w: unknown action %d", ErrInvalidTransition, action.Kind)
	}
	if s.observer != nil {
		question, ok := s.Current()
		if !ok {
			question = -1
		}
		s.observer.OnTransition(Transition{
			Action:   action,
			From:     from,
			To:       s.phase,
			Question: question,
			Score:    s.Stats(),
			Err:      err,
		})
	}
	return err
}

func (s *Session) start() error {
	if s.phase != NotStarted {
		return s.invalid(ActionStart)
	}
	return s.begin()
}

// begin draws the first question from the whole bank.
func (s *Session) begin() error {
	next, err := s.selector.PickUnseen(s.bank.Len(), s.answered)
	if err != nil {
		return err
	}
	s.current = next
	s.selected = noSelection
	s.phase = AwaitingChoice
	return nil
}

func (s *Session) selectChoice(choice int) error {
	if s.phase != AwaitingChoice {
		return s.invalid(ActionSelect)
	}
	question, _ := s.bank.Question(s.current)
	if choice < 0 || choice >= len(question.Choice) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrChoiceOutOfRange, choice, len(question.Choice))
	}
	s.selected = choice
	return nil
}

func (s *Session) submit() error {
	if s.phase != AwaitingChoice {
		return s.invalid(ActionSubmit)
	}
	if s.selected == noSelection {
		return ErrNoSelection
	}
	if s.answered.Has(s.current) {
		return fmt.Errorf("%w: question %d already answered", ErrInvalidTransition, s.current)
	}
	question, _ := s.bank.Question(s.current)
	s.answered.Add(s.current)
	if question.IsCorrect(s.selected) {
		s.correct++
	}
	s.phase = AnswerRevealed
	return nil
}

func (s *Session) skip() error {
	if s.phase != AwaitingChoice {
		return s.invalid(ActionSkip)
	}
	next, err := s.selector.Pick(s.skipCandidates())
	if err != nil {
		return err
	}
	s.current = next
	s.selected = noSelection
	return nil
}

func (s *Session) cont() error {
	if s.phase != AnswerRevealed {
		return s.invalid(ActionContinue)
	}
	if s.answered.Len() == s.bank.Len() {
		s.selected = noSelection
		s.phase = Completed
		return nil
	}
	next, err := s.selector.PickUnseen(s.bank.Len(), s.answered)
	if err != nil {
		return err
	}
	s.current = next
	s.selected = noSelection
	s.phase = AwaitingChoice
	return nil
}

func (s *Session) restart() error {
	if s.phase != Completed {
		return s.invalid(ActionRestart)
	}
	s.answered = IndexSet{}
	s.correct = 0
	return s.begin()
}

// skipCandidates lists unseen questions other than the current one.
func (s *Session) skipCandidates() []int {
	unseen := Unseen(s.bank.Len(), s.answered)
	out := unseen[:0]
	for _, index := range unseen {
		if index != s.current {
			out = append(out, index)
		}
	}
	return out
}

func (s *Session) invalid(kind ActionKind) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, kind, s.phase)
}
