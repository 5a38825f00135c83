package core

// Action represents a semantic viewer action, abstracted from physical key
// presses. The platform layer maps keys to actions; the simulation viewer
// only sees the intent.
type Action int

const (
	ActionNone     Action = iota
	ActionPause           // Space, P - pause/resume the simulation
	ActionRestart         // R - rebuild the scenario from the seed
	ActionOverlay         // T - toggle the tree overlay
	ActionFaster          // + - increase the timestep
	ActionSlower          // - - decrease the timestep
	ActionZoomIn          // Z - zoom the camera in
	ActionZoomOut         // X - zoom the camera out
	ActionFit             // F - refit the camera to the body cloud
	ActionSnapshot        // S - save a state snapshot to disk
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionOverlay:
		return "Overlay"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionFit:
		return "Fit"
	case ActionSnapshot:
		return "Snapshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
