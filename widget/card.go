package widget

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calder/tact/style"
	"github.com/calder/tact/text"
)

// Compile-time check that Card implements Interactive
var _ Interactive = (*Card)(nil)

// Card is a bordered press-to-act control with a title, a description,
// and an optional badge. Activation fires OnPress, like Button.
type Card struct {
	name        string
	description string
	badge       string
	styles      style.Styles

	selected bool
	focused  bool
	disabled bool

	width int
	box   Box
	cache *renderCache

	// OnPress is called on every activation.
	OnPress func()
}

// NewCard creates a card button.
func NewCard(name, description string, styles style.Styles) *Card {
	return &Card{
		name:        name,
		description: description,
		styles:      styles,
		cache:       newRenderCache(32),
	}
}

// SetBadge sets the badge text shown after the title. Empty hides it.
func (c *Card) SetBadge(badge string) { c.badge = badge }

// SetSelected marks the card as the current choice.
func (c *Card) SetSelected(selected bool) { c.selected = selected }

// Selected reports whether the card is marked selected.
func (c *Card) Selected() bool { return c.selected }

// Name returns the widget name used in emitted messages.
func (c *Card) Name() string { return c.name }

// Focus implements Interactive.
func (c *Card) Focus() { c.focused = true }

// Blur implements Interactive.
func (c *Card) Blur() { c.focused = false }

// Focused implements Interactive.
func (c *Card) Focused() bool { return c.focused }

// SetDisabled implements Interactive.
func (c *Card) SetDisabled(disabled bool) { c.disabled = disabled }

// SetWidth implements Widget.
func (c *Card) SetWidth(w int) { c.width = w }

// Height implements Widget.
func (c *Card) Height() int {
	// border + title + wrapped description lines
	return 2 + 1 + len(c.descriptionLines())
}

// SetPosition implements Interactive.
func (c *Card) SetPosition(x, y int) {
	c.box = Box{X: x, Y: y, W: c.width, H: c.Height()}
}

// Update implements Interactive.
func (c *Card) Update(msg tea.Msg) tea.Cmd {
	if c.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if c.focused && isActivate(msg) {
			return c.press()
		}
	case tea.MouseMsg:
		if leftPress(msg) && c.box.Contains(msg.X, msg.Y) {
			return c.press()
		}
	}
	return nil
}

func (c *Card) press() tea.Cmd {
	if c.OnPress != nil {
		c.OnPress()
	}
	name := c.name
	return func() tea.Msg {
		return PressedMsg{Name: name}
	}
}

// View implements Widget.
func (c *Card) View() string {
	key := fmt.Sprintf("%s|%s|%s|%t|%t|%t|%d",
		c.name, c.description, c.badge, c.selected, c.focused, c.disabled, c.width)
	return c.cache.get(key, c.render)
}

func (c *Card) render() string {
	inner := c.innerWidth()

	titleStyle := c.styles.CardTitle
	descStyle := c.styles.CardDescription
	if c.disabled {
		titleStyle = c.styles.LabelDisabled
		descStyle = c.styles.LabelDisabled
	}

	title := titleStyle.Render(text.Truncate(c.name, inner))
	if c.badge != "" {
		badge := c.styles.CardBadge.Render(c.badge)
		gap := inner - text.Width(title) - text.Width(badge)
		if gap > 0 {
			title += strings.Repeat(" ", gap) + badge
		}
	}

	lines := []string{title}
	for _, l := range c.descriptionLines() {
		lines = append(lines, descStyle.Render(l))
	}
	content := strings.Join(lines, "\n")

	border := c.styles.CardBorder
	if c.selected || c.focused {
		border = c.styles.CardBorderSelected
	}
	// Style width includes padding but not the border itself.
	return border.Width(inner + 2).Render(content)
}

// innerWidth is the content width inside border and padding.
func (c *Card) innerWidth() int {
	inner := c.width - 4
	if inner < 8 {
		inner = 8
	}
	return inner
}

// descriptionLines wraps the description to the inner width on word
// boundaries.
func (c *Card) descriptionLines() []string {
	if c.description == "" {
		return nil
	}
	inner := c.innerWidth()
	var lines []string
	line := ""
	for _, word := range strings.Fields(c.description) {
		switch {
		case line == "":
			line = word
		case text.Width(line)+1+text.Width(word) <= inner:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
