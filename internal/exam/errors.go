package exam

import "errors"

var (
	// ErrEmptyBank indicates a session was requested for a bank without questions.
	ErrEmptyBank = errors.New("exam: question bank is empty")
	// ErrInvalidTransition indicates an action that the current phase does not accept.
	ErrInvalidTransition = errors.New("exam: invalid transition")
	// ErrNoSelection indicates Submit without a selected choice.
	ErrNoSelection = errors.New("exam: no choice selected")
	// ErrChoiceOutOfRange indicates a choice index outside the current question.
	ErrChoiceOutOfRange = errors.New("exam: choice out of range")
	// ErrNoUnseenQuestions indicates there is no other unanswered question to draw.
	ErrNoUnseenQuestions = errors.New("exam: no unseen questions remain")
)
