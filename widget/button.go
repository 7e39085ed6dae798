package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calder/tact/style"
)

// Variant selects the button emphasis.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantDanger
	VariantGhost
)

// Compile-time check that Button implements Interactive
var _ Interactive = (*Button)(nil)

// Button is a small press-to-act control. It holds no value; activation
// fires OnPress and emits PressedMsg.
type Button struct {
	name    string
	variant Variant
	styles  style.Styles

	focused  bool
	disabled bool

	width int
	box   Box

	// OnPress is called on every activation.
	OnPress func()
}

// NewButton creates a button with the given label and variant.
func NewButton(name string, variant Variant, styles style.Styles) *Button {
	return &Button{name: name, variant: variant, styles: styles}
}

// Name returns the widget name used in emitted messages.
func (b *Button) Name() string { return b.name }

// Focus implements Interactive.
func (b *Button) Focus() { b.focused = true }

// Blur implements Interactive.
func (b *Button) Blur() { b.focused = false }

// Focused implements Interactive.
func (b *Button) Focused() bool { return b.focused }

// SetDisabled implements Interactive.
func (b *Button) SetDisabled(disabled bool) { b.disabled = disabled }

// SetWidth implements Widget.
func (b *Button) SetWidth(w int) { b.width = w }

// Height implements Widget.
func (b *Button) Height() int { return 1 }

// SetPosition implements Interactive.
func (b *Button) SetPosition(x, y int) {
	b.box = Box{X: x, Y: y, W: b.renderedWidth(), H: b.Height()}
}

// renderedWidth is the actual footprint: label plus the style's padding.
func (b *Button) renderedWidth() int {
	return lipgloss.Width(b.View())
}

// Update implements Interactive.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if b.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.focused && isActivate(msg) {
			return b.press()
		}
	case tea.MouseMsg:
		if leftPress(msg) && b.box.Contains(msg.X, msg.Y) {
			return b.press()
		}
	}
	return nil
}

func (b *Button) press() tea.Cmd {
	if b.OnPress != nil {
		b.OnPress()
	}
	name := b.name
	return func() tea.Msg {
		return PressedMsg{Name: name}
	}
}

// View implements Widget.
func (b *Button) View() string {
	s := b.variantStyle()
	switch {
	case b.disabled:
		s = b.styles.ButtonDisabled
	case b.focused:
		s = s.Inherit(b.styles.ButtonFocused)
	}
	return s.Render(b.name)
}

func (b *Button) variantStyle() lipgloss.Style {
	switch b.variant {
	case VariantSecondary:
		return b.styles.ButtonSecondary
	case VariantDanger:
		return b.styles.ButtonDanger
	case VariantGhost:
		return b.styles.ButtonGhost
	default:
		return b.styles.ButtonPrimary
	}
}
