package monitor

// State is the lifecycle phase of the render goroutine.
type State int32

const (
	// StateRunning accepts samples and redraws every cycle.
	StateRunning State = iota
	// StateShuttingDown has seen a stop condition and is restoring the terminal.
	StateShuttingDown
	// StateTerminated is final. The terminal has been restored.
	StateTerminated
)

// String returns a human-readable state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting down"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// StopReason records what ended a session.
type StopReason int

const (
	ReasonNone     StopReason = iota
	ReasonClosed              // shutdown sentinel drained
	ReasonKeyPress            // user pressed a key
	ReasonStopped             // Stop was called
	ReasonContext             // the monitor context was cancelled
	ReasonFailed              // the renderer failed
)

// String returns a human-readable reason.
func (r StopReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonClosed:
		return "closed"
	case ReasonKeyPress:
		return "key press"
	case ReasonStopped:
		return "stopped"
	case ReasonContext:
		return "context done"
	case ReasonFailed:
		return "render failure"
	default:
		return "unknown"
	}
}
