package conn

import (
	"sync"
	"time"

	"github.com/calder/tact/internal/buffer"
	"github.com/calder/tact/internal/log"
	"github.com/calder/tact/internal/timer"
)

// DefaultConnectDelay is the simulated connect transition time.
const DefaultConnectDelay = 2 * time.Second

// Event is emitted on every state transition.
type Event struct {
	Name    string
	State   State
	Summary Summary
}

// Service drives a Registry with simulated connect delays. A single
// goroutine owns the registry; all mutation happens through jobs posted to
// that loop, so no lock guards the registry itself. Transitions are
// published on an unbounded event buffer, so the loop never blocks on a
// slow consumer (a UI forwarding events into its own message queue).
type Service struct {
	reg   *Registry
	delay time.Duration

	jobs     chan func()
	sched    *timer.Scheduler
	pending  map[string]func() // cancel funcs for in-flight connects
	eventsIn chan<- Event
	events   <-chan Event

	done      chan struct{}
	closeOnce sync.Once
}

// NewService creates and starts a Service for the given connection names.
// A delay of 0 selects DefaultConnectDelay.
func NewService(delay time.Duration, names ...string) *Service {
	if delay <= 0 {
		delay = DefaultConnectDelay
	}
	in, out := buffer.Unbounded[Event](16, 1024)
	s := &Service{
		reg:      NewRegistry(names...),
		delay:    delay,
		jobs:     make(chan func(), 16),
		pending:  make(map[string]func()),
		eventsIn: in,
		events:   out,
		done:     make(chan struct{}),
	}
	s.sched = timer.New(s.jobs, s.done)
	go s.loop()
	return s
}

// Events returns the stream of state transitions. The channel closes after
// Close once all queued events have been drained.
func (s *Service) Events() <-chan Event {
	return s.events
}

// Connect starts the simulated connect for a named connection.
func (s *Service) Connect(name string) {
	s.post(func() { s.connect(name) })
}

// Disconnect drops a connection immediately, cancelling a pending connect.
func (s *Service) Disconnect(name string) {
	s.post(func() { s.disconnect(name) })
}

// Toggle connects the named connection when it is disconnected,
// otherwise disconnects it.
func (s *Service) Toggle(name string) {
	s.post(func() {
		if st, ok := s.reg.State(name); ok && st == StateDisconnected {
			s.connect(name)
		} else {
			s.disconnect(name)
		}
	})
}

// Snapshot returns the current status of every connection.
func (s *Service) Snapshot() []Status {
	reply := make(chan []Status, 1)
	s.post(func() { reply <- s.reg.Snapshot() })
	select {
	case snap := <-reply:
		return snap
	case <-s.done:
		return nil
	}
}

// Summary returns the current aggregate state.
func (s *Service) Summary() Summary {
	return Summarize(s.Snapshot())
}

// Close stops the service. Pending connect timers are cancelled and the
// event channel is closed after queued events flush.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		stopped := make(chan struct{})
		s.post(func() {
			for _, cancel := range s.pending {
				cancel()
			}
			s.pending = make(map[string]func())
			close(stopped)
		})
		select {
		case <-stopped:
		case <-time.After(time.Second):
		}
		close(s.done)
	})
}

func (s *Service) post(job func()) {
	select {
	case s.jobs <- job:
	case <-s.done:
	}
}

func (s *Service) loop() {
	// Only this goroutine sends events, so it owns the close.
	defer close(s.eventsIn)
	for {
		select {
		case <-s.done:
			return
		case job := <-s.jobs:
			job()
		}
	}
}

// connect runs on the loop goroutine.
func (s *Service) connect(name string) {
	gen, ok := s.reg.Connect(name)
	if !ok {
		return
	}
	log.Debug("connection connecting", "name", name, "delay", s.delay)
	s.emit(name, StateConnecting)

	s.pending[name] = s.sched.Schedule(s.delay, func() {
		delete(s.pending, name)
		if s.reg.Complete(name, gen) {
			log.Info("connection established", "name", name)
			s.emit(name, StateConnected)
		}
	})
}

// disconnect runs on the loop goroutine.
func (s *Service) disconnect(name string) {
	if cancel, ok := s.pending[name]; ok {
		cancel()
		delete(s.pending, name)
	}
	if s.reg.Disconnect(name) {
		log.Info("connection closed", "name", name)
		s.emit(name, StateDisconnected)
	}
}

func (s *Service) emit(name string, state State) {
	s.eventsIn <- Event{Name: name, State: state, Summary: s.reg.Summary()}
}
