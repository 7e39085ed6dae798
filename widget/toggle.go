package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calder/tact/style"
	"github.com/calder/tact/text"
)

// Compile-time check that Toggle implements Interactive
var _ Interactive = (*Toggle)(nil)

// Toggle is an on/off switch. Uncontrolled by default: it owns its value,
// optionally seeded with SetDefault. Calling SetOn puts it in controlled
// mode, where the displayed value only changes when the parent pushes a
// new one and interaction is reported through OnChange alone.
type Toggle struct {
	name   string
	styles style.Styles

	on         bool
	controlled bool
	focused    bool
	disabled   bool

	width int
	box   Box

	// OnChange is called with the requested value on every activation.
	OnChange func(on bool)
}

// NewToggle creates an uncontrolled toggle switch, initially off.
func NewToggle(name string, styles style.Styles) *Toggle {
	return &Toggle{name: name, styles: styles}
}

// SetDefault seeds the uncontrolled value without marking the toggle
// controlled.
func (t *Toggle) SetDefault(on bool) {
	t.on = on
}

// SetOn sets the displayed value and puts the toggle in controlled mode.
func (t *Toggle) SetOn(on bool) {
	t.controlled = true
	t.on = on
}

// On returns the displayed value.
func (t *Toggle) On() bool { return t.on }

// Name returns the widget name used in emitted messages.
func (t *Toggle) Name() string { return t.name }

// Focus implements Interactive.
func (t *Toggle) Focus() { t.focused = true }

// Blur implements Interactive.
func (t *Toggle) Blur() { t.focused = false }

// Focused implements Interactive.
func (t *Toggle) Focused() bool { return t.focused }

// SetDisabled implements Interactive.
func (t *Toggle) SetDisabled(disabled bool) { t.disabled = disabled }

// Disabled reports whether interaction is ignored.
func (t *Toggle) Disabled() bool { return t.disabled }

// SetWidth implements Widget.
func (t *Toggle) SetWidth(w int) { t.width = w }

// Height implements Widget.
func (t *Toggle) Height() int { return 1 }

// SetPosition implements Interactive.
func (t *Toggle) SetPosition(x, y int) {
	t.box = Box{X: x, Y: y, W: t.width, H: t.Height()}
}

// Update implements Interactive.
func (t *Toggle) Update(msg tea.Msg) tea.Cmd {
	if t.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if t.focused && isActivate(msg) {
			return t.activate()
		}
	case tea.MouseMsg:
		if leftPress(msg) && t.box.Contains(msg.X, msg.Y) {
			return t.activate()
		}
	}
	return nil
}

func (t *Toggle) activate() tea.Cmd {
	next := !t.on
	if !t.controlled {
		t.on = next
	}
	if t.OnChange != nil {
		t.OnChange(next)
	}
	name, on := t.name, next
	return func() tea.Msg {
		return ToggledMsg{Name: name, On: on}
	}
}

// View implements Widget.
func (t *Toggle) View() string {
	var track string
	if t.on {
		track = t.styles.ToggleTrackOn.Render("[  ●]")
	} else {
		track = t.styles.ToggleTrackOff.Render("[●  ]")
	}

	label := t.labelStyle().Render(t.name)
	out := track + " " + label
	if t.width > 0 {
		out = text.PadRight(out, t.width)
	}
	return out
}

func (t *Toggle) labelStyle() lipgloss.Style {
	switch {
	case t.disabled:
		return t.styles.LabelDisabled
	case t.focused:
		return t.styles.LabelFocused
	default:
		return t.styles.Label
	}
}
