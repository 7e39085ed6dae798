package conn

// Status pairs a connection name with its current state.
type Status struct {
	Name  string
	State State
}

// Registry tracks the state of a fixed, ordered set of named connections.
// All entries start disconnected. The registry is a pure state machine: it
// owns no timers and no goroutines, so a single owner must serialize access
// (Service does; widgets run on the Bubble Tea loop).
//
// Connect hands out a generation token that Complete must present. A
// disconnect bumps the generation, so a transition scheduled before the
// disconnect can never land afterwards.
type Registry struct {
	names  []string
	states map[string]State
	gens   map[string]int
}

// NewRegistry creates a registry with the given connection names.
// Duplicate and empty names are ignored.
func NewRegistry(names ...string) *Registry {
	r := &Registry{
		states: make(map[string]State, len(names)),
		gens:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		r.Add(name)
	}
	return r
}

// Add registers a new connection in the disconnected state.
// Reports whether the name was added.
func (r *Registry) Add(name string) bool {
	if name == "" {
		return false
	}
	if _, exists := r.states[name]; exists {
		return false
	}
	r.names = append(r.names, name)
	r.states[name] = StateDisconnected
	return true
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns the connection names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// State returns the state of a named connection.
func (r *Registry) State(name string) (State, bool) {
	s, ok := r.states[name]
	return s, ok
}

// Connect moves a disconnected connection to connecting and returns the
// generation token the eventual Complete call must present. Connections
// that are unknown, already connecting, or connected are left alone.
func (r *Registry) Connect(name string) (gen int, ok bool) {
	s, known := r.states[name]
	if !known || s != StateDisconnected {
		return 0, false
	}
	r.gens[name]++
	r.states[name] = StateConnecting
	return r.gens[name], true
}

// Complete finishes a pending connect. The transition only lands if the
// connection is still connecting and the token matches the generation the
// connect handed out.
func (r *Registry) Complete(name string, gen int) bool {
	if r.states[name] != StateConnecting || r.gens[name] != gen {
		return false
	}
	r.states[name] = StateConnected
	return true
}

// Disconnect moves a connection to disconnected immediately. A connecting
// entry has its generation bumped, invalidating any pending Complete.
// Reports whether the state changed.
func (r *Registry) Disconnect(name string) bool {
	s, known := r.states[name]
	if !known || s == StateDisconnected {
		return false
	}
	r.gens[name]++
	r.states[name] = StateDisconnected
	return true
}

// Snapshot returns the current status of every connection in order.
func (r *Registry) Snapshot() []Status {
	out := make([]Status, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, Status{Name: name, State: r.states[name]})
	}
	return out
}

// Summary derives the aggregate display state.
func (r *Registry) Summary() Summary {
	return Summarize(r.Snapshot())
}
