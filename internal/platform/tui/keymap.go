package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/klokkia/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// Letter keys only count while the answer box is closed; once it is open
// they are typed into the answer.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Submit    key.Binding
	Hint      key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Submit, k.Hint, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Submit, k.Hint, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("arrows/wasd", "walk"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "walk back"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "walk left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "walk right"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/answer"),
		),
		Hint: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "hint"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action. While typing, only
// non-printable keys map to actions; everything else belongs to the answer.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, typing bool) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.ForceQuit) {
		return core.ActionQuit, true
	}

	// Arrow keys always move; wasd only when not typing.
	if typing && msg.Type == tea.KeyRunes {
		return core.ActionNone, false
	}

	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Submit):
		return core.ActionSubmit, false
	case key.Matches(msg, km.keys.Hint):
		return core.ActionHint, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// heldKeys approximates held arrow keys on terminals that only report
// presses: each press keeps its direction active for a short window, which
// the terminal's key repeat refreshes while the key stays down.
type heldKeys map[core.Action]int

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// press marks a direction as held for the given number of ticks.
func (h heldKeys) press(a core.Action, ticks int) {
	if o, ok := opposite[a]; ok {
		delete(h, o)
		h[a] = ticks
	}
}

// apply sets every held direction on the frame and ages the holds.
func (h heldKeys) apply(frame *core.InputFrame) {
	for a, n := range h {
		frame.Set(a)
		if n <= 1 {
			delete(h, a)
		} else {
			h[a] = n - 1
		}
	}
}

// release drops every held direction.
func (h heldKeys) release() {
	clear(h)
}
