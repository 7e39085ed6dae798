package widget

// ToggledMsg is emitted when a toggle switch or checkbox changes value.
type ToggledMsg struct {
	Name string
	On   bool
}

// PressedMsg is emitted when a button or card button is activated.
type PressedMsg struct {
	Name string
}

// SelectedMsg is emitted when a segmented control or dropdown selection
// changes.
type SelectedMsg struct {
	Name   string
	Index  int
	Option string
}

// OpenedMsg is emitted when a dropdown opens.
type OpenedMsg struct {
	Name string
}

// ClosedMsg is emitted when a dropdown closes without a selection.
type ClosedMsg struct {
	Name string
}

// ConnToggleMsg is emitted when a connection row in the status dropdown is
// activated. The host forwards it to whatever owns the connection state.
type ConnToggleMsg struct {
	Name string
}
