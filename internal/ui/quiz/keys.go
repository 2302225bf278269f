package quiz

import (
	"github.com/charmbracelet/bubbles/key"

	"examtrainer/internal/exam"
)

// keyMap binds keys to session actions. Bindings are enabled per phase so the
// help footer and key matching only offer valid actions.
type keyMap struct {
	Start    key.Binding
	Choice1  key.Binding
	Choice2  key.Binding
	Choice3  key.Binding
	Up       key.Binding
	Down     key.Binding
	Pick     key.Binding
	Submit   key.Binding
	Skip     key.Binding
	Continue key.Binding
	Restart  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Choice1:  key.NewBinding(key.WithKeys("1", "a"), key.WithHelp("1-3", "choose")),
		Choice2:  key.NewBinding(key.WithKeys("2", "b")),
		Choice3:  key.NewBinding(key.WithKeys("3", "c")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "move")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Pick:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "choose")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		Skip:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Continue: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "continue")),
		Restart:  key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "try again")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// forView returns a copy of the key map with bindings enabled for view.
func (k keyMap) forView(view exam.View) keyMap {
	question := view.Phase == exam.AwaitingChoice
	k.Start.SetEnabled(view.Phase == exam.NotStarted)
	k.Choice1.SetEnabled(question)
	k.Choice2.SetEnabled(question)
	k.Choice3.SetEnabled(question)
	k.Up.SetEnabled(question)
	k.Down.SetEnabled(question)
	k.Pick.SetEnabled(question)
	k.Submit.SetEnabled(question && view.SubmitEnabled)
	k.Skip.SetEnabled(question && view.SkipEnabled)
	k.Continue.SetEnabled(view.Phase == exam.AnswerRevealed)
	k.Restart.SetEnabled(view.Phase == exam.Completed)
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Choice1, k.Submit, k.Skip, k.Continue, k.Restart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Submit, k.Continue, k.Restart},
		{k.Choice1, k.Up, k.Pick, k.Skip},
		{k.Help, k.Quit},
	}
}
