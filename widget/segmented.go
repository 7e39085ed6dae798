package widget

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calder/tact/style"
	"github.com/calder/tact/text"
)

// Compile-time check that Segmented implements Interactive
var _ Interactive = (*Segmented)(nil)

// Segmented is a single-choice control rendered as a row of segments.
// Exactly one option is selected at all times. Left/right cycle with
// wraparound; a click selects the segment under the pointer.
type Segmented struct {
	name    string
	options []string
	styles  style.Styles

	selected   int
	controlled bool
	focused    bool
	disabled   bool

	width int
	box   Box
	cache *renderCache

	// OnChange is called with the requested index on every change.
	OnChange func(index int, option string)
}

// NewSegmented creates an uncontrolled segmented control with the first
// option selected.
func NewSegmented(name string, options []string, styles style.Styles) *Segmented {
	return &Segmented{
		name:    name,
		options: options,
		styles:  styles,
		cache:   newRenderCache(64),
	}
}

// SetDefault seeds the uncontrolled selection.
func (s *Segmented) SetDefault(index int) {
	if index >= 0 && index < len(s.options) {
		s.selected = index
	}
}

// SetSelected sets the displayed selection and puts the control in
// controlled mode.
func (s *Segmented) SetSelected(index int) {
	if index >= 0 && index < len(s.options) {
		s.controlled = true
		s.selected = index
	}
}

// Selected returns the displayed selection index.
func (s *Segmented) Selected() int { return s.selected }

// SelectedOption returns the displayed selection value.
func (s *Segmented) SelectedOption() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.selected]
}

// Name returns the widget name used in emitted messages.
func (s *Segmented) Name() string { return s.name }

// Focus implements Interactive.
func (s *Segmented) Focus() { s.focused = true }

// Blur implements Interactive.
func (s *Segmented) Blur() { s.focused = false }

// Focused implements Interactive.
func (s *Segmented) Focused() bool { return s.focused }

// SetDisabled implements Interactive.
func (s *Segmented) SetDisabled(disabled bool) { s.disabled = disabled }

// SetWidth implements Widget.
func (s *Segmented) SetWidth(w int) { s.width = w }

// Height implements Widget.
func (s *Segmented) Height() int { return 1 }

// SetPosition implements Interactive.
func (s *Segmented) SetPosition(x, y int) {
	s.box = Box{X: x, Y: y, W: text.Width(s.View()), H: s.Height()}
}

// Update implements Interactive.
func (s *Segmented) Update(msg tea.Msg) tea.Cmd {
	if s.disabled || len(s.options) == 0 {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return nil
		}
		switch msg.String() {
		case "left", "h":
			return s.selectIndex((s.selected - 1 + len(s.options)) % len(s.options))
		case "right", "l", " ", "enter":
			return s.selectIndex((s.selected + 1) % len(s.options))
		}
	case tea.MouseMsg:
		if leftPress(msg) && s.box.Contains(msg.X, msg.Y) {
			if i := s.segmentAt(msg.X - s.box.X); i >= 0 {
				return s.selectIndex(i)
			}
		}
	}
	return nil
}

// segmentAt maps a column offset inside the control to an option index.
// Hit ranges use visible widths, so styled padding counts.
func (s *Segmented) segmentAt(offset int) int {
	pos := 0
	for i := range s.options {
		w := text.Width(s.renderSegment(i))
		if offset < pos+w {
			return i
		}
		pos += w
	}
	return -1
}

func (s *Segmented) selectIndex(index int) tea.Cmd {
	if index == s.selected {
		return nil
	}
	if !s.controlled {
		s.selected = index
	}
	if s.OnChange != nil {
		s.OnChange(index, s.options[index])
	}
	name, option := s.name, s.options[index]
	return func() tea.Msg {
		return SelectedMsg{Name: name, Index: index, Option: option}
	}
}

// View implements Widget.
func (s *Segmented) View() string {
	if len(s.options) == 0 {
		return ""
	}
	parts := make([]string, len(s.options))
	for i := range s.options {
		parts[i] = s.renderSegment(i)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	if s.disabled {
		row = s.styles.LabelDisabled.Render(text.StripANSI(row))
	}
	return row
}

func (s *Segmented) renderSegment(i int) string {
	key := fmt.Sprintf("%s|%t", s.options[i], i == s.selected)
	return s.cache.get(key, func() string {
		if i == s.selected {
			return s.styles.SegmentSelected.Render(s.options[i])
		}
		return s.styles.SegmentNormal.Render(s.options[i])
	})
}

// Options returns the option labels.
func (s *Segmented) Options() []string {
	return append([]string(nil), s.options...)
}
