package widget

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Widget is the interface for layout-aware UI elements.
type Widget interface {
	SetWidth(w int)
	Height() int
	View() string
}

// Interactive extends Widget with focus and input handling. The hosting
// model routes key messages to the focused widget and mouse messages to
// every widget; each widget hit-tests against its recorded bounds.
type Interactive interface {
	Widget
	Update(msg tea.Msg) tea.Cmd
	Focus()
	Blur()
	Focused() bool
	SetDisabled(disabled bool)
	SetPosition(x, y int)
}

// Box is a screen-space rectangle recorded at layout time so widgets can
// hit-test mouse clicks against where they were last rendered.
type Box struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// isActivate reports whether a key press should activate the focused control.
func isActivate(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", " ":
		return true
	}
	return false
}

// leftPress reports whether a mouse message is a left-button press.
func leftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
