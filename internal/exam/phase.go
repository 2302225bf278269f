package exam

// Phase identifies the screen a session is on.
type Phase int

const (
	// NotStarted is the welcome screen.
	NotStarted Phase = iota
	// AwaitingChoice shows a question and collects a choice.
	AwaitingChoice
	// AnswerRevealed shows correctness feedback for the submitted choice.
	AnswerRevealed
	// Completed shows the final score after every question was answered.
	Completed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case AwaitingChoice:
		return "awaiting_choice"
	case AnswerRevealed:
		return "answer_revealed"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// ActionKind identifies a user input event.
type ActionKind int

const (
	// ActionStart leaves the welcome screen.
	ActionStart ActionKind = iota
	// ActionSelect marks a choice of the current question.
	ActionSelect
	// ActionSubmit grades the selected choice.
	ActionSubmit
	// ActionSkip swaps the current question for another unanswered one.
	ActionSkip
	// ActionContinue moves past the answer feedback.
	ActionContinue
	// ActionRestart clears progress after completion.
	ActionRestart
)

// String returns the action name.
func (k ActionKind) String() string {
	switch k {
	case ActionStart:
		return "start"
	case ActionSelect:
		return "select"
	case ActionSubmit:
		return "submit"
	case ActionSkip:
		return "skip"
	case ActionContinue:
		return "continue"
	case ActionRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Action is a discrete user input event. Choice is only read for ActionSelect.
type Action struct {
	Kind   ActionKind
	Choice int
}

// Start returns the start action.
func Start() Action { return Action{Kind: ActionStart} }

// Select returns the action selecting choice.
func Select(choice int) Action { return Action{Kind: ActionSelect, Choice: choice} }

// Submit returns the submit action.
func Submit() Action { return Action{Kind: ActionSubmit} }

// Skip returns the skip action.
func Skip() Action { return Action{Kind: ActionSkip} }

// Continue returns the continue action.
func Continue() Action { return Action{Kind: ActionContinue} }

// Restart returns the restart action.
func Restart() Action { return Action{Kind: ActionRestart} }
