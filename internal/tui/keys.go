package tui

import "github.com/charmbracelet/bubbles/key"

// browseKeys holds the key bindings for the main screen.
type browseKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Clear  key.Binding
	Sort   key.Binding
	Import key.Binding
	Export key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings shown in the help bar.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Add, k.Edit, k.Delete, k.Sort, k.Quit}
}

// FullHelp returns all bindings grouped for expanded help.
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.Add, k.Edit, k.Delete, k.Clear},
		{k.Sort, k.Import, k.Export, k.Quit},
	}
}

// promptKeys holds the key bindings while a prompt is open.
type promptKeys struct {
	Accept key.Binding
	Cancel key.Binding
}

// ShortHelp returns the prompt bindings for the help bar.
func (k promptKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Cancel}
}

// FullHelp returns the prompt bindings grouped for expanded help.
func (k promptKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Accept, k.Cancel}}
}

// BrowseKeyMap returns the key bindings for the main screen.
// Editing keys are control chords so plain letters always reach the inputs.
func BrowseKeyMap() browseKeys {
	return browseKeys{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "save edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear all"),
		),
		Sort: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sort"),
		),
		Import: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "import"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "export"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// PromptKeyMap returns the key bindings for the path prompt.
func PromptKeyMap() promptKeys {
	return promptKeys{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ConfirmKeyMap returns the key bindings for the clear confirmation.
func ConfirmKeyMap() promptKeys {
	return promptKeys{
		Accept: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "delete all"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "cancel"),
		),
	}
}
