package conn

import (
	"testing"
	"time"
)

func waitEvent(t *testing.T, events <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestServiceConnectEmitsConnectingThenConnected(t *testing.T) {
	s := NewService(10*time.Millisecond, "cameras")
	defer s.Close()

	s.Connect("cameras")

	ev := waitEvent(t, s.Events(), time.Second)
	if ev.Name != "cameras" || ev.State != StateConnecting {
		t.Fatalf("first event = %+v, want cameras connecting", ev)
	}
	if ev.Summary.State != StateConnecting {
		t.Fatalf("summary during connect = %+v", ev.Summary)
	}

	ev = waitEvent(t, s.Events(), time.Second)
	if ev.Name != "cameras" || ev.State != StateConnected {
		t.Fatalf("second event = %+v, want cameras connected", ev)
	}
	if ev.Summary.Label() != "Connected" {
		t.Fatalf("summary after connect = %q", ev.Summary.Label())
	}
}

func TestServiceDisconnectDuringConnectCancels(t *testing.T) {
	s := NewService(50*time.Millisecond, "broker")
	defer s.Close()

	s.Connect("broker")
	ev := waitEvent(t, s.Events(), time.Second)
	if ev.State != StateConnecting {
		t.Fatalf("event = %+v, want connecting", ev)
	}

	s.Disconnect("broker")
	ev = waitEvent(t, s.Events(), time.Second)
	if ev.State != StateDisconnected {
		t.Fatalf("event = %+v, want disconnected", ev)
	}

	// The cancelled connect must never land.
	select {
	case ev := <-s.Events():
		t.Fatalf("unexpected event after cancel: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}

	snap := s.Snapshot()
	if len(snap) != 1 || snap[0].State != StateDisconnected {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestServiceToggle(t *testing.T) {
	s := NewService(10*time.Millisecond, "cameras")
	defer s.Close()

	s.Toggle("cameras")
	if ev := waitEvent(t, s.Events(), time.Second); ev.State != StateConnecting {
		t.Fatalf("toggle from disconnected should connect, got %+v", ev)
	}
	if ev := waitEvent(t, s.Events(), time.Second); ev.State != StateConnected {
		t.Fatalf("expected connected, got %+v", ev)
	}

	s.Toggle("cameras")
	if ev := waitEvent(t, s.Events(), time.Second); ev.State != StateDisconnected {
		t.Fatalf("toggle from connected should disconnect, got %+v", ev)
	}
}

func TestServiceIgnoresRedundantOperations(t *testing.T) {
	s := NewService(10*time.Millisecond, "cameras")
	defer s.Close()

	s.Disconnect("cameras") // already disconnected
	s.Connect("unknown")    // not registered

	select {
	case ev := <-s.Events():
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestServiceCloseClosesEvents(t *testing.T) {
	s := NewService(10*time.Millisecond, "cameras")
	s.Close()

	select {
	case _, ok := <-s.Events():
		if ok {
			t.Fatal("expected closed event channel")
		}
	case <-time.After(time.Second):
		t.Fatal("event channel did not close")
	}
}
