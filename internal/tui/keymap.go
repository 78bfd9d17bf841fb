package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jbeckham/jiratrack/internal/session"
)

// keyMap defines the keybindings for every mode.
type keyMap struct {
	Quit    key.Binding
	ForceQ  key.Binding
	Up      key.Binding
	Down    key.Binding
	Log     key.Binding
	Refresh key.Binding
	Timer   key.Binding
	Copy    key.Binding
	Filter  key.Binding

	Submit      key.Binding
	Cancel      key.Binding
	SwitchField key.Binding
	More        key.Binding
	Less        key.Binding
	Backspace   key.Binding

	FilterApply key.Binding
	FilterClear key.Binding
}

// defaultKeyMap returns the default keybindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Log:     key.NewBinding(key.WithKeys("enter", "l"), key.WithHelp("enter", "log time")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Timer:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timer")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),

		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		SwitchField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		More:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "±15m")),
		Less:        key.NewBinding(key.WithKeys("-")),
		Backspace:   key.NewBinding(key.WithKeys("backspace")),

		FilterApply: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		FilterClear: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
	}
}

// modeHelp adapts a set of bindings to help.KeyMap.
type modeHelp []key.Binding

func (h modeHelp) ShortHelp() []key.Binding  { return h }
func (h modeHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

// helpFor returns the bindings worth showing in the current view.
func (k keyMap) helpFor(v session.View) modeHelp {
	switch v.Mode {
	case session.ModeLoading:
		return modeHelp{k.Quit}
	case session.ModeComposing:
		return modeHelp{k.Submit, k.SwitchField, k.More, k.Cancel}
	case session.ModeConfirming:
		return nil
	}
	if v.FilterEditing {
		return modeHelp{k.Up, k.Down, k.FilterApply, k.FilterClear}
	}
	h := modeHelp{k.Up, k.Down, k.Log, k.Timer, k.Filter, k.Copy, k.Refresh}
	if v.Filter != "" {
		h = append(h, k.FilterClear)
	}
	return append(h, k.Quit)
}
