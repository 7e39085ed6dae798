package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calder/tact/conn"
	"github.com/calder/tact/internal/log"
	"github.com/calder/tact/style"
	"github.com/calder/tact/widget"
)

// model is the gallery: one section per widget, tab moves focus, the
// connection dropdown is wired to a conn.Service.
type model struct {
	svc    *conn.Service
	keys   keyMap
	help   help.Model
	styles style.Styles

	sound   *widget.Toggle
	notify  *widget.Toggle // controlled: value lives on the model
	verbose *widget.Checkbox
	mode    *widget.Segmented
	save    *widget.Button
	cancel  *widget.Button
	del     *widget.Button
	record  *widget.Card
	replay  *widget.Card
	camera  *widget.Dropdown
	status  *widget.ConnStatus

	controls []widget.Interactive
	focusIdx int
	notifyOn bool

	width     int
	lastEvent string
}

func newModel(svc *conn.Service) model {
	styles := style.DefaultStyles()

	m := model{
		svc:    svc,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: styles,
	}

	m.sound = widget.NewToggle("sound", styles)
	m.sound.SetDefault(true)

	m.notify = widget.NewToggle("notifications", styles)
	m.notify.SetOn(false)

	m.verbose = widget.NewCheckbox("verbose logging", styles)

	m.mode = widget.NewSegmented("mode", []string{"Live", "Replay", "Off"}, styles)

	m.save = widget.NewButton("Save", widget.VariantPrimary, styles)
	m.cancel = widget.NewButton("Cancel", widget.VariantSecondary, styles)
	m.del = widget.NewButton("Delete", widget.VariantDanger, styles)
	m.del.SetDisabled(true)

	m.record = widget.NewCard("Record", "Start a new capture session with the current settings.", styles)
	m.record.SetBadge("beta")
	m.replay = widget.NewCard("Replay", "Review the most recent session frame by frame.", styles)

	m.camera = widget.NewDropdown("camera", []string{"front", "side", "overhead", "wide"}, styles)

	m.status = widget.NewConnStatus(svc.Snapshot(), styles)

	m.controls = []widget.Interactive{
		m.sound, m.notify, m.verbose, m.mode,
		m.save, m.cancel, m.del,
		m.record, m.replay,
		m.camera, m.status,
	}
	m.controls[0].Focus()

	return m
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		w := msg.Width - 4
		if w > 56 {
			w = 56
		}
		for _, c := range m.controls {
			c.SetWidth(w)
		}
		cardW := (w - 2) / 2
		m.record.SetWidth(cardW)
		m.replay.SetWidth(cardW)
		return m, nil

	case tea.KeyMsg:
		// An open menu owns the keyboard, aside from the hard quit.
		if msg.String() != "ctrl+c" && m.overlayOpen() {
			return m, m.controls[m.focusIdx].Update(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.moveFocus(-1)
			return m, nil
		}
		return m, m.controls[m.focusIdx].Update(msg)

	case tea.MouseMsg:
		var cmds []tea.Cmd
		for _, c := range m.controls {
			if cmd := c.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case widget.ConnEventMsg:
		m.lastEvent = fmt.Sprintf("conn %s → %s", msg.Name, msg.State)
		return m, m.status.Update(msg)

	case spinner.TickMsg:
		return m, m.status.Update(msg)

	case widget.ConnToggleMsg:
		m.svc.Toggle(msg.Name)
		return m, nil

	case widget.ToggledMsg:
		if msg.Name == "notifications" {
			// Controlled toggle: the model owns the value.
			m.notifyOn = msg.On
			m.notify.SetOn(m.notifyOn)
		}
		m.lastEvent = fmt.Sprintf("%s = %v", msg.Name, msg.On)
		log.Debug("toggled", "name", msg.Name, "on", msg.On)
		return m, nil

	case widget.PressedMsg:
		m.lastEvent = fmt.Sprintf("%s pressed", msg.Name)
		log.Debug("pressed", "name", msg.Name)
		return m, nil

	case widget.SelectedMsg:
		m.lastEvent = fmt.Sprintf("%s = %s", msg.Name, msg.Option)
		log.Debug("selected", "name", msg.Name, "option", msg.Option)
		return m, nil
	}

	return m, nil
}

// overlayOpen reports whether the focused control is showing a menu.
func (m model) overlayOpen() bool {
	switch c := m.controls[m.focusIdx].(type) {
	case *widget.Dropdown:
		return c.Open()
	case *widget.ConnStatus:
		return c.Open()
	}
	return false
}

func (m *model) moveFocus(delta int) {
	m.controls[m.focusIdx].Blur()
	m.focusIdx = (m.focusIdx + delta + len(m.controls)) % len(m.controls)
	m.controls[m.focusIdx].Focus()
}

// View implements tea.Model. Positions are recorded during rendering so
// mouse hit-testing matches what is on screen.
func (m model) View() string {
	var b strings.Builder
	y := 0

	write := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
		y += lipgloss.Height(s)
	}
	section := func(title string) {
		write("")
		write(m.styles.Muted.Render(title))
	}

	write(m.styles.CardTitle.Render("tact widget gallery"))

	section("Switches")
	for _, c := range []widget.Interactive{m.sound, m.notify, m.verbose} {
		c.SetPosition(0, y)
		write(c.View())
	}

	section("Segmented")
	m.mode.SetPosition(0, y)
	write(m.mode.View())

	section("Buttons")
	x := 0
	var parts []string
	for _, btn := range []*widget.Button{m.save, m.cancel, m.del} {
		btn.SetPosition(x, y)
		v := btn.View()
		parts = append(parts, v)
		x += lipgloss.Width(v) + 2
	}
	write(strings.Join(parts, "  "))

	section("Cards")
	m.record.SetPosition(0, y)
	m.replay.SetPosition(lipgloss.Width(m.record.View())+2, y)
	write(lipgloss.JoinHorizontal(lipgloss.Top, m.record.View(), "  ", m.replay.View()))

	section("Dropdown")
	m.camera.SetPosition(0, y)
	write(m.camera.View())

	section("Connections")
	m.status.SetPosition(0, y)
	write(m.status.View())

	write("")
	if m.lastEvent != "" {
		write(m.styles.Muted.Render("last: " + m.lastEvent))
	}
	write(m.help.View(m.keys))

	return b.String()
}
