package conn

import "fmt"

// State is the lifecycle state of a single named connection.
// A connection is always in exactly one of the three states.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Summary is the aggregate display state derived from all connections.
type Summary struct {
	State     State
	Connected int
	Total     int
}

// Label returns the display text for the aggregate state.
func (s Summary) Label() string {
	switch s.State {
	case StateConnecting:
		return "Connecting..."
	case StateConnected:
		if s.Connected == s.Total {
			return "Connected"
		}
		return fmt.Sprintf("Connected %d/%d", s.Connected, s.Total)
	default:
		return "Disconnected"
	}
}

// Summarize derives the aggregate state from a snapshot:
// any connecting entry wins, then any connected entry, else disconnected.
func Summarize(statuses []Status) Summary {
	sum := Summary{Total: len(statuses)}
	connecting := false
	for _, st := range statuses {
		switch st.State {
		case StateConnecting:
			connecting = true
		case StateConnected:
			sum.Connected++
		}
	}
	switch {
	case connecting:
		sum.State = StateConnecting
	case sum.Connected > 0:
		sum.State = StateConnected
	default:
		sum.State = StateDisconnected
	}
	return sum
}
