package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings for the main view. It implements help.KeyMap.
type KeyMap struct {
	PlayPause     key.Binding
	StepBack      key.Binding
	Complete      key.Binding
	Reset         key.Binding
	ToggleChat    key.Binding
	FocusChat     key.Binding
	ClearChat     key.Binding
	Settings      key.Binding
	Edit          key.Binding
	Notifications key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		StepBack: key.NewBinding(
			key.WithKeys("b", "left"),
			key.WithHelp("b", "step back"),
		),
		Complete: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "jump to end"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),
		ToggleChat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chat"),
		),
		FocusChat: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "write message"),
		),
		ClearChat: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear chat"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit text"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notifications"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "K"),
			key.WithHelp("pgup", "scroll summary"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "J"),
			key.WithHelp("pgdn", "scroll summary"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.StepBack, k.ToggleChat, k.Settings, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.StepBack, k.Complete, k.Reset},
		{k.ToggleChat, k.FocusChat, k.ClearChat},
		{k.Edit, k.Settings, k.Notifications},
		{k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}

// setRunning enables or disables the bindings that are unavailable while
// playback advances. Disabled bindings drop out of the help line.
func (k *KeyMap) setRunning(running bool) {
	k.StepBack.SetEnabled(!running)
	k.ToggleChat.SetEnabled(!running)
	k.Settings.SetEnabled(!running)
}

// setChatOpen enables the bindings that only make sense with the panel open.
func (k *KeyMap) setChatOpen(open bool) {
	k.FocusChat.SetEnabled(open)
	k.ClearChat.SetEnabled(open)
}
