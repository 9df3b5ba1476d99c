package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/nnl3336/QuickNote/internal/i18n"
)

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Escape  key.Binding
	New     key.Binding
	Delete  key.Binding
	Search  key.Binding
	Discard key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func NewKeyMap() KeyMap {
	t := i18n.T()
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", t.KeyUp),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", t.KeyDown),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", t.KeyOpen),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", t.KeySave),
		),
		New: key.NewBinding(
			key.WithKeys("ctrl+n", "n"),
			key.WithHelp("n", t.KeyNew),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", t.KeyDelete),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f", "/"),
			key.WithHelp("/", t.KeySearch),
		),
		Discard: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("Ctrl+X", t.KeyCancel),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", t.KeyCopy),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h", "?"),
			key.WithHelp("?", t.KeyHelp),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "q"),
			key.WithHelp("q", t.KeyQuit),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.New, k.Search, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Escape},
		{k.New, k.Delete, k.Search, k.Copy},
		{k.Discard, k.Help, k.Quit},
	}
}
