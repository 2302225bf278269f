package quiz

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"examtrainer/internal/assets"
	"examtrainer/internal/bank"
	"examtrainer/internal/exam"
	"examtrainer/internal/ui"
)

// ImageSource resolves image keys referenced by questions.
type ImageSource interface {
	Lookup(key string) (assets.Image, bool)
}

// Options configures the quiz model.
type Options struct {
	Title   string
	NoColor bool
	Images  ImageSource
}

// Model renders an exam session with Bubble Tea. The session is read on every
// redraw and mutated only from Update.
type Model struct {
	session  *exam.Session
	images   ImageSource
	keys     keyMap
	help     help.Model
	progress progress.Model
	title    string
	noColor  bool
	width    int
	height   int
	cursor   int
	notice   string
}

// NewModel constructs a quiz model for session.
func NewModel(session *exam.Session, opts Options) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40
	return Model{
		session:  session,
		images:   opts.Images,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: bar,
		title:    opts.Title,
		noColor:  opts.NoColor,
	}
}

// Run starts a full-screen program for session and blocks until the user quits.
func Run(ctx context.Context, session *exam.Session, in io.Reader, out io.Writer, opts Options) error {
	program := tea.NewProgram(
		NewModel(session, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	if m.title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.title)
}

// Update maps key presses to session transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.help.Width = typed.Width
		m.progress.Width = max(min(typed.Width-4, 60), 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey applies the action bound to msg in the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.session.View()
	keys := m.keys.forView(view)
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.notice = ""
	switch {
	case key.Matches(msg, keys.Start):
		m = m.apply(exam.Start())
	case key.Matches(msg, keys.Choice1):
		m = m.choose(0)
	case key.Matches(msg, keys.Choice2):
		m = m.choose(1)
	case key.Matches(msg, keys.Choice3):
		m = m.choose(2)
	case key.Matches(msg, keys.Up):
		m.cursor = (m.cursor + bank.ChoiceCount - 1) % bank.ChoiceCount
	case key.Matches(msg, keys.Down):
		m.cursor = (m.cursor + 1) % bank.ChoiceCount
	case key.Matches(msg, keys.Pick):
		m = m.apply(exam.Select(m.cursor))
	case key.Matches(msg, keys.Submit):
		m = m.apply(exam.Submit())
	case key.Matches(msg, keys.Skip):
		m = m.apply(exam.Skip())
	case key.Matches(msg, keys.Continue):
		m = m.apply(exam.Continue())
	case key.Matches(msg, keys.Restart):
		m = m.apply(exam.Restart())
	case view.Phase == exam.AwaitingChoice && msg.String() == "s":
		m.notice = ui.NoSkip
	}
	return m, nil
}

func (m Model) choose(choice int) Model {
	m.cursor = choice
	return m.apply(exam.Select(choice))
}

// apply forwards action to the session. The cursor returns to the first choice
// whenever a new question is drawn.
func (m Model) apply(action exam.Action) Model {
	if err := m.session.Apply(action); err != nil {
		m.notice = err.Error()
		return m
	}
	switch action.Kind {
	case exam.ActionStart, exam.ActionSkip, exam.ActionContinue, exam.ActionRestart:
		m.cursor = 0
	}
	return m
}

// View renders the screen for the current phase.
func (m Model) View() string {
	view := m.session.View()
	keys := m.keys.forView(view)

	var body string
	switch view.Phase {
	case exam.NotStarted:
		body = renderWelcome(m.title, m.noColor)
	case exam.AwaitingChoice:
		body = renderQuestion(view, m.cursor, m.questionImage(view), m.noColor)
	case exam.AnswerRevealed:
		body = renderFeedback(view, m.noColor)
	case exam.Completed:
		body = renderCompleted(view, m.noColor)
	}

	sections := []string{body}
	if view.Phase == exam.AwaitingChoice || view.Phase == exam.AnswerRevealed {
		sections = append(sections, "", renderProgress(m.progress, view, m.noColor), renderScore(view, m.noColor))
	}
	if m.notice != "" {
		sections = append(sections, stylize(m.notice, m.noColor, lipgloss.Color("214")))
	}
	sections = append(sections, "", m.help.View(keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// questionImage renders the image for the question on screen, if any.
func (m Model) questionImage(view exam.View) string {
	if !view.Question.HasImage() || m.images == nil {
		return ""
	}
	img, ok := m.images.Lookup(view.Question.Image)
	if !ok {
		return ""
	}
	return renderImage(img, m.width-2, m.noColor)
}
