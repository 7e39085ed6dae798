package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calder/tact/conn"
	"github.com/calder/tact/style"
	"github.com/calder/tact/text"
)

// Compile-time check that ConnStatus implements Interactive
var _ Interactive = (*ConnStatus)(nil)

// ConnEventMsg carries a connection state transition into the UI. Hosts
// forward conn.Service events as this message.
type ConnEventMsg conn.Event

// ConnStatus is the composed connection status dropdown. The trigger shows
// the aggregate state; the open menu lists every connection with its state
// and lets the user toggle each one. The widget is presentational: it never
// mutates connection state itself. Row activation emits ConnToggleMsg and
// calls OnToggle; state flows back in through ConnEventMsg or SetStatuses.
type ConnStatus struct {
	names   []string
	states  map[string]conn.State
	summary conn.Summary
	styles  style.Styles

	spin      spinner.Model
	open      bool
	highlight int
	focused   bool
	disabled  bool

	width   int
	trigger Box
	menu    Box

	// OnToggle is called with the connection name on row activation.
	OnToggle func(name string)
}

// NewConnStatus creates the widget from an initial snapshot.
func NewConnStatus(statuses []conn.Status, styles style.Styles) *ConnStatus {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusConnecting

	c := &ConnStatus{
		states: make(map[string]conn.State, len(statuses)),
		styles: styles,
		spin:   sp,
	}
	c.SetStatuses(statuses)
	return c
}

// SetStatuses replaces the full connection snapshot.
func (c *ConnStatus) SetStatuses(statuses []conn.Status) {
	c.names = c.names[:0]
	for k := range c.states {
		delete(c.states, k)
	}
	for _, st := range statuses {
		c.names = append(c.names, st.Name)
		c.states[st.Name] = st.State
	}
	c.summary = conn.Summarize(statuses)
	if c.highlight >= len(c.names) {
		c.highlight = 0
	}
}

// Summary returns the aggregate state currently displayed.
func (c *ConnStatus) Summary() conn.Summary { return c.summary }

// Open reports whether the menu is showing.
func (c *ConnStatus) Open() bool { return c.open }

// Focus implements Interactive.
func (c *ConnStatus) Focus() { c.focused = true }

// Blur implements Interactive. Losing focus closes the menu.
func (c *ConnStatus) Blur() {
	c.focused = false
	c.open = false
}

// Focused implements Interactive.
func (c *ConnStatus) Focused() bool { return c.focused }

// SetDisabled implements Interactive.
func (c *ConnStatus) SetDisabled(disabled bool) {
	c.disabled = disabled
	if disabled {
		c.open = false
	}
}

// SetWidth implements Widget.
func (c *ConnStatus) SetWidth(w int) { c.width = w }

// Height implements Widget.
func (c *ConnStatus) Height() int {
	if !c.open {
		return 1
	}
	rows := len(c.names)
	if rows == 0 {
		rows = 1
	}
	return 1 + rows + 2
}

// SetPosition implements Interactive.
func (c *ConnStatus) SetPosition(x, y int) {
	c.trigger = Box{X: x, Y: y, W: c.width, H: 1}
	c.menu = Box{X: x, Y: y + 1, W: c.width, H: c.Height() - 1}
}

// Update implements Interactive.
func (c *ConnStatus) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ConnEventMsg:
		c.states[msg.Name] = msg.State
		c.summary = msg.Summary
		if msg.State == conn.StateConnecting {
			// Keep the spinner ticking while anything is connecting.
			return c.spin.Tick
		}
		return nil

	case spinner.TickMsg:
		if !c.anyConnecting() {
			return nil
		}
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		return cmd
	}

	if c.disabled {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c.handleKey(msg)
	case tea.MouseMsg:
		return c.handleMouse(msg)
	}
	return nil
}

func (c *ConnStatus) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !c.focused {
		return nil
	}

	if !c.open {
		if isActivate(msg) || msg.String() == "down" {
			c.open = true
			c.highlight = 0
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		c.open = false
		return nil
	case "up":
		c.moveHighlight(-1)
		return nil
	case "down":
		c.moveHighlight(1)
		return nil
	case "enter", " ":
		return c.toggleRow(c.highlight)
	}
	return nil
}

func (c *ConnStatus) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !leftPress(msg) {
		return nil
	}

	if c.trigger.Contains(msg.X, msg.Y) {
		c.open = !c.open
		c.highlight = 0
		return nil
	}

	if !c.open {
		return nil
	}

	if c.menu.Contains(msg.X, msg.Y) {
		row := msg.Y - c.menu.Y - 1
		if row >= 0 && row < len(c.names) {
			return c.toggleRow(row)
		}
		return nil
	}

	// Outside click: close without toggling anything.
	c.open = false
	return nil
}

func (c *ConnStatus) moveHighlight(delta int) {
	if len(c.names) == 0 {
		return
	}
	c.highlight += delta
	if c.highlight < 0 {
		c.highlight = len(c.names) - 1
	}
	if c.highlight >= len(c.names) {
		c.highlight = 0
	}
}

func (c *ConnStatus) toggleRow(row int) tea.Cmd {
	if row < 0 || row >= len(c.names) {
		return nil
	}
	name := c.names[row]
	if c.OnToggle != nil {
		c.OnToggle(name)
	}
	return func() tea.Msg {
		return ConnToggleMsg{Name: name}
	}
}

func (c *ConnStatus) anyConnecting() bool {
	for _, st := range c.states {
		if st == conn.StateConnecting {
			return true
		}
	}
	return false
}

// View implements Widget.
func (c *ConnStatus) View() string {
	trigger := c.renderTrigger()
	if !c.open {
		return trigger
	}
	return trigger + "\n" + c.menuView()
}

func (c *ConnStatus) renderTrigger() string {
	var dot string
	switch c.summary.State {
	case conn.StateConnected:
		dot = c.styles.StatusConnected.Render("●")
	case conn.StateConnecting:
		dot = c.spin.View()
	default:
		dot = c.styles.StatusDisconnected.Render("●")
	}

	labelStyle := c.styles.Label
	switch {
	case c.disabled:
		labelStyle = c.styles.LabelDisabled
	case c.focused:
		labelStyle = c.styles.LabelFocused
	}

	arrow := "▾"
	if c.open {
		arrow = "▴"
	}
	return dot + " " + labelStyle.Render(c.summary.Label()) + " " + c.styles.Muted.Render(arrow)
}

func (c *ConnStatus) menuView() string {
	var lines []string

	if len(c.names) == 0 {
		lines = append(lines, c.styles.Muted.Render("  No connections"))
	}

	for i, name := range c.names {
		state := c.states[name]

		var dot string
		switch state {
		case conn.StateConnected:
			dot = c.styles.StatusConnected.Render("●")
		case conn.StateConnecting:
			dot = c.spin.View()
		default:
			dot = c.styles.StatusDisconnected.Render("●")
		}

		prefix := "  "
		rowStyle := c.styles.MenuNormal
		if i == c.highlight {
			prefix = "> "
			rowStyle = c.styles.MenuSelected
		}

		label := text.PadRight(text.Truncate(name, c.width-18), c.width-18)
		stateText := c.stateStyle(state).Render(state.String())
		lines = append(lines, rowStyle.Render(prefix)+dot+" "+rowStyle.Render(label)+" "+stateText)
	}

	content := strings.Join(lines, "\n")
	return c.styles.MenuBorder.Width(c.width - 2).Render(content)
}

func (c *ConnStatus) stateStyle(state conn.State) lipgloss.Style {
	switch state {
	case conn.StateConnected:
		return c.styles.StatusConnected
	case conn.StateConnecting:
		return c.styles.StatusConnecting
	default:
		return c.styles.StatusDisconnected
	}
}
