// Package ui renders the viewer's ImGui panels.
package ui

// State holds per-session UI toggles. The panels mutate it; the main
// loop owns it.
type State struct {
	ShowStats     bool
	ShowInspector bool
	ShowDemo      bool
}

// NewState returns the default panel visibility.
func NewState() *State {
	return &State{
		ShowStats:     true,
		ShowInspector: true,
	}
}
