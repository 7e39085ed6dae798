package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the widget kit.
type Styles struct {
	// Controls
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	LabelDisabled lipgloss.Style

	// Toggle switch
	ToggleTrackOn  lipgloss.Style
	ToggleTrackOff lipgloss.Style
	ToggleKnob     lipgloss.Style

	// Segmented control
	SegmentSelected lipgloss.Style
	SegmentNormal   lipgloss.Style

	// Buttons
	ButtonPrimary   lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonDanger    lipgloss.Style
	ButtonGhost     lipgloss.Style
	ButtonDisabled  lipgloss.Style
	ButtonFocused   lipgloss.Style

	// Checkbox
	CheckboxChecked   lipgloss.Style
	CheckboxUnchecked lipgloss.Style

	// Card buttons
	CardBorder         lipgloss.Style
	CardBorderSelected lipgloss.Style
	CardTitle          lipgloss.Style
	CardDescription    lipgloss.Style
	CardBadge          lipgloss.Style

	// Dropdown menu
	MenuBorder   lipgloss.Style
	MenuSelected lipgloss.Style
	MenuNormal   lipgloss.Style

	// Connection status indicators
	StatusConnected    lipgloss.Style
	StatusDisconnected lipgloss.Style
	StatusConnecting   lipgloss.Style

	// Misc
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		// Controls - plain labels, emphasis only on focus
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		LabelFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Bold(true),
		LabelDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		// Toggle switch
		ToggleTrackOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		ToggleTrackOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray (subtle)
		ToggleKnob: lipgloss.NewStyle().
			Bold(true),

		// Segmented control
		SegmentSelected: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1).
			Bold(true),
		SegmentNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Padding(0, 1),

		// Buttons
		ButtonPrimary: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 2),
		ButtonSecondary: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 2),
		ButtonDanger: lipgloss.NewStyle().
			Background(lipgloss.Color("124")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 2),
		ButtonGhost: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 2),
		ButtonDisabled: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("240")).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		// Checkbox
		CheckboxChecked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")),
		CheckboxUnchecked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),

		// Card buttons
		CardBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		CardBorderSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Bold(true),
		CardDescription: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		CardBadge: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),

		// Dropdown menu (overlay under the trigger)
		MenuBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		MenuSelected: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")),
		MenuNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		// Connection status - subtle colors
		StatusConnected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		StatusDisconnected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray (subtle)
		StatusConnecting: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")), // Muted yellow

		// Misc
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
	}
}
