package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calder/tact/style"
	"github.com/calder/tact/text"
)

// Compile-time check that Checkbox implements Interactive
var _ Interactive = (*Checkbox)(nil)

// Checkbox is a labeled check control with the same controlled/uncontrolled
// semantics as Toggle.
type Checkbox struct {
	name   string
	styles style.Styles

	checked    bool
	controlled bool
	focused    bool
	disabled   bool

	width int
	box   Box

	// OnChange is called with the requested value on every activation.
	OnChange func(checked bool)
}

// NewCheckbox creates an uncontrolled checkbox, initially unchecked.
func NewCheckbox(name string, styles style.Styles) *Checkbox {
	return &Checkbox{name: name, styles: styles}
}

// SetDefault seeds the uncontrolled value.
func (c *Checkbox) SetDefault(checked bool) {
	c.checked = checked
}

// SetChecked sets the displayed value and puts the checkbox in controlled
// mode.
func (c *Checkbox) SetChecked(checked bool) {
	c.controlled = true
	c.checked = checked
}

// Checked returns the displayed value.
func (c *Checkbox) Checked() bool { return c.checked }

// Name returns the widget name used in emitted messages.
func (c *Checkbox) Name() string { return c.name }

// Focus implements Interactive.
func (c *Checkbox) Focus() { c.focused = true }

// Blur implements Interactive.
func (c *Checkbox) Blur() { c.focused = false }

// Focused implements Interactive.
func (c *Checkbox) Focused() bool { return c.focused }

// SetDisabled implements Interactive.
func (c *Checkbox) SetDisabled(disabled bool) { c.disabled = disabled }

// SetWidth implements Widget.
func (c *Checkbox) SetWidth(w int) { c.width = w }

// Height implements Widget.
func (c *Checkbox) Height() int { return 1 }

// SetPosition implements Interactive.
func (c *Checkbox) SetPosition(x, y int) {
	c.box = Box{X: x, Y: y, W: c.width, H: c.Height()}
}

// Update implements Interactive.
func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	if c.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if c.focused && isActivate(msg) {
			return c.activate()
		}
	case tea.MouseMsg:
		if leftPress(msg) && c.box.Contains(msg.X, msg.Y) {
			return c.activate()
		}
	}
	return nil
}

func (c *Checkbox) activate() tea.Cmd {
	next := !c.checked
	if !c.controlled {
		c.checked = next
	}
	if c.OnChange != nil {
		c.OnChange(next)
	}
	name, checked := c.name, next
	return func() tea.Msg {
		return ToggledMsg{Name: name, On: checked}
	}
}

// View implements Widget.
func (c *Checkbox) View() string {
	var mark string
	if c.checked {
		mark = c.styles.CheckboxChecked.Render("[x]")
	} else {
		mark = c.styles.CheckboxUnchecked.Render("[ ]")
	}

	out := mark + " " + c.labelStyle().Render(c.name)
	if c.width > 0 {
		out = text.PadRight(out, c.width)
	}
	return out
}

func (c *Checkbox) labelStyle() lipgloss.Style {
	switch {
	case c.disabled:
		return c.styles.LabelDisabled
	case c.focused:
		return c.styles.LabelFocused
	default:
		return c.styles.Label
	}
}
