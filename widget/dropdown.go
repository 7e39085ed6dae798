package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calder/tact/style"
	"github.com/calder/tact/text"
)

// Compile-time check that Dropdown implements Interactive
var _ Interactive = (*Dropdown)(nil)

// Dropdown is a button that opens a menu of options below the trigger.
// It tracks open/closed state, closes on escape or on any click outside
// its recorded bounds, and reports selections through OnSelect.
//
// Typing while open narrows the options by case-insensitive substring
// match; backspace widens again.
type Dropdown struct {
	name    string
	options []string
	styles  style.Styles

	open       bool
	selected   int // selected option index, -1 when nothing chosen yet
	highlight  int // menu cursor (index into filtered)
	filtered   []int
	query      string
	scrollOff  int
	maxVisible int
	controlled bool
	focused    bool
	disabled   bool

	width   int
	trigger Box
	menu    Box

	// OnSelect is called with the requested option on every selection.
	OnSelect func(index int, option string)
}

// NewDropdown creates an uncontrolled dropdown with nothing selected.
func NewDropdown(name string, options []string, styles style.Styles) *Dropdown {
	d := &Dropdown{
		name:       name,
		options:    options,
		styles:     styles,
		selected:   -1,
		maxVisible: 8,
	}
	d.resetFilter()
	return d
}

// SetMaxVisible caps the number of menu rows shown at once.
func (d *Dropdown) SetMaxVisible(n int) {
	if n > 0 {
		d.maxVisible = n
	}
}

// SetDefault seeds the uncontrolled selection.
func (d *Dropdown) SetDefault(index int) {
	if index >= 0 && index < len(d.options) {
		d.selected = index
	}
}

// SetSelected sets the displayed selection and puts the dropdown in
// controlled mode.
func (d *Dropdown) SetSelected(index int) {
	if index >= 0 && index < len(d.options) {
		d.controlled = true
		d.selected = index
	}
}

// Selected returns the displayed selection index, -1 when none.
func (d *Dropdown) Selected() int { return d.selected }

// SelectedOption returns the displayed selection value, "" when none.
func (d *Dropdown) SelectedOption() string {
	if d.selected < 0 || d.selected >= len(d.options) {
		return ""
	}
	return d.options[d.selected]
}

// Open reports whether the menu is showing.
func (d *Dropdown) Open() bool { return d.open }

// Name returns the widget name used in emitted messages.
func (d *Dropdown) Name() string { return d.name }

// Focus implements Interactive.
func (d *Dropdown) Focus() { d.focused = true }

// Blur implements Interactive. Losing focus closes the menu.
func (d *Dropdown) Blur() {
	d.focused = false
	d.close()
}

// Focused implements Interactive.
func (d *Dropdown) Focused() bool { return d.focused }

// SetDisabled implements Interactive.
func (d *Dropdown) SetDisabled(disabled bool) {
	d.disabled = disabled
	if disabled {
		d.close()
	}
}

// SetWidth implements Widget.
func (d *Dropdown) SetWidth(w int) { d.width = w }

// Height implements Widget.
func (d *Dropdown) Height() int {
	if !d.open {
		return 1
	}
	rows := len(d.filtered)
	if rows > d.maxVisible {
		rows = d.maxVisible
	}
	if rows == 0 {
		rows = 1 // "No matches" placeholder
	}
	if d.query != "" {
		rows++ // query line
	}
	return 1 + rows + 2 // trigger + rows + menu border
}

// SetPosition implements Interactive.
func (d *Dropdown) SetPosition(x, y int) {
	d.trigger = Box{X: x, Y: y, W: d.width, H: 1}
	d.menu = Box{X: x, Y: y + 1, W: d.width, H: d.Height() - 1}
}

// Update implements Interactive.
func (d *Dropdown) Update(msg tea.Msg) tea.Cmd {
	if d.disabled {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d.handleKey(msg)
	case tea.MouseMsg:
		return d.handleMouse(msg)
	}
	return nil
}

func (d *Dropdown) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !d.focused {
		return nil
	}

	if !d.open {
		if isActivate(msg) || msg.String() == "down" {
			return d.openMenu()
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		d.close()
		return d.closedMsg()
	case "up":
		d.moveHighlight(-1)
		return nil
	case "down":
		d.moveHighlight(1)
		return nil
	case "enter":
		return d.choose(d.highlight)
	case "backspace":
		if d.query != "" {
			d.setQuery(d.query[:len(d.query)-1])
		}
		return nil
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			d.setQuery(d.query + string(msg.Runes))
		}
		return nil
	}
}

func (d *Dropdown) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !leftPress(msg) {
		return nil
	}

	if d.trigger.Contains(msg.X, msg.Y) {
		if d.open {
			d.close()
			return d.closedMsg()
		}
		return d.openMenu()
	}

	if !d.open {
		return nil
	}

	if d.menu.Contains(msg.X, msg.Y) {
		// First menu row sits below the trigger and the top border.
		row := msg.Y - d.menu.Y - 1
		if d.query != "" {
			row-- // query line occupies the first row
		}
		// Only rows inside the scroll window are clickable; the bottom
		// border must not map to the first option below the window.
		visible := len(d.filtered) - d.scrollOff
		if visible > d.maxVisible {
			visible = d.maxVisible
		}
		if row >= 0 && row < visible {
			return d.choose(d.scrollOff + row)
		}
		return nil
	}

	// Outside click: close without selecting.
	d.close()
	return d.closedMsg()
}

func (d *Dropdown) openMenu() tea.Cmd {
	if len(d.options) == 0 {
		return nil
	}
	d.open = true
	d.resetFilter()
	// Start the cursor on the current selection.
	if d.selected >= 0 {
		for i, opt := range d.filtered {
			if opt == d.selected {
				d.highlight = i
				break
			}
		}
	}
	d.adjustScroll()
	name := d.name
	return func() tea.Msg {
		return OpenedMsg{Name: name}
	}
}

func (d *Dropdown) close() {
	d.open = false
	d.resetFilter()
}

func (d *Dropdown) closedMsg() tea.Cmd {
	name := d.name
	return func() tea.Msg {
		return ClosedMsg{Name: name}
	}
}

// choose selects the filtered row at idx and closes the menu.
func (d *Dropdown) choose(idx int) tea.Cmd {
	if idx < 0 || idx >= len(d.filtered) {
		d.close()
		return d.closedMsg()
	}
	optIdx := d.filtered[idx]
	d.close()

	if !d.controlled {
		d.selected = optIdx
	}
	if d.OnSelect != nil {
		d.OnSelect(optIdx, d.options[optIdx])
	}
	name, option := d.name, d.options[optIdx]
	return func() tea.Msg {
		return SelectedMsg{Name: name, Index: optIdx, Option: option}
	}
}

func (d *Dropdown) moveHighlight(delta int) {
	if len(d.filtered) == 0 {
		return
	}
	d.highlight += delta
	if d.highlight < 0 {
		d.highlight = len(d.filtered) - 1
	}
	if d.highlight >= len(d.filtered) {
		d.highlight = 0
	}
	d.adjustScroll()
}

func (d *Dropdown) adjustScroll() {
	if d.highlight < d.scrollOff {
		d.scrollOff = d.highlight
	} else if d.highlight >= d.scrollOff+d.maxVisible {
		d.scrollOff = d.highlight - d.maxVisible + 1
	}
}

func (d *Dropdown) setQuery(q string) {
	d.query = q
	d.filtered = d.filtered[:0]
	for i, opt := range d.options {
		if q == "" || strings.Contains(strings.ToLower(opt), strings.ToLower(q)) {
			d.filtered = append(d.filtered, i)
		}
	}
	d.highlight = 0
	d.scrollOff = 0
}

func (d *Dropdown) resetFilter() {
	d.query = ""
	d.filtered = d.filtered[:0]
	for i := range d.options {
		d.filtered = append(d.filtered, i)
	}
	d.highlight = 0
	d.scrollOff = 0
}

// View implements Widget.
func (d *Dropdown) View() string {
	label := d.SelectedOption()
	if label == "" {
		label = d.name
	}

	arrow := "▾"
	if d.open {
		arrow = "▴"
	}

	labelStyle := d.styles.Label
	switch {
	case d.disabled:
		labelStyle = d.styles.LabelDisabled
	case d.focused:
		labelStyle = d.styles.LabelFocused
	}
	trigger := labelStyle.Render(text.Truncate(label, d.width-2)) + " " + d.styles.Muted.Render(arrow)

	if !d.open {
		return trigger
	}
	return trigger + "\n" + d.menuView()
}

func (d *Dropdown) menuView() string {
	var lines []string

	if d.query != "" {
		lines = append(lines, d.styles.Muted.Render("/"+d.query))
	}

	if len(d.filtered) == 0 {
		lines = append(lines, d.styles.Muted.Render("  No matches"))
	} else {
		start := d.scrollOff
		end := start + d.maxVisible
		if end > len(d.filtered) {
			end = len(d.filtered)
		}
		for i := start; i < end; i++ {
			opt := d.options[d.filtered[i]]
			prefix := "  "
			rowStyle := d.styles.MenuNormal
			if i == d.highlight {
				prefix = "> "
				rowStyle = d.styles.MenuSelected
			}
			lines = append(lines, rowStyle.Render(prefix+text.Truncate(opt, d.width-6)))
		}
	}

	content := strings.Join(lines, "\n")
	return d.styles.MenuBorder.Width(d.width - 2).Render(content)
}
