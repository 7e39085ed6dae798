package widget

import (
	"strings"
	"testing"

	"github.com/calder/tact/conn"
	"github.com/calder/tact/style"
)

func newTestConnStatus() *ConnStatus {
	c := NewConnStatus([]conn.Status{
		{Name: "cameras", State: conn.StateDisconnected},
		{Name: "broker", State: conn.StateDisconnected},
	}, style.DefaultStyles())
	c.SetWidth(40)
	c.SetPosition(0, 0)
	c.Focus()
	return c
}

func TestConnStatusInitialSummary(t *testing.T) {
	c := newTestConnStatus()
	if c.Summary().Label() != "Disconnected" {
		t.Fatalf("summary = %q", c.Summary().Label())
	}
	if !strings.Contains(c.View(), "Disconnected") {
		t.Fatal("trigger should show the aggregate label")
	}
}

func TestConnStatusAppliesEvents(t *testing.T) {
	c := newTestConnStatus()

	cmd := c.Update(ConnEventMsg{
		Name:  "cameras",
		State: conn.StateConnecting,
		Summary: conn.Summary{
			State: conn.StateConnecting, Total: 2,
		},
	})
	if cmd == nil {
		t.Fatal("connecting event should start the spinner tick")
	}
	if c.Summary().Label() != "Connecting..." {
		t.Fatalf("summary = %q", c.Summary().Label())
	}

	c.Update(ConnEventMsg{
		Name:  "cameras",
		State: conn.StateConnected,
		Summary: conn.Summary{
			State: conn.StateConnected, Connected: 1, Total: 2,
		},
	})
	if c.Summary().Label() != "Connected 1/2" {
		t.Fatalf("summary = %q", c.Summary().Label())
	}
}

func TestConnStatusRowToggleEmitsMsg(t *testing.T) {
	c := newTestConnStatus()
	var toggled string
	c.OnToggle = func(name string) { toggled = name }

	runCmd(c.Update(keyEnter())) // open
	if !c.Open() {
		t.Fatal("menu should open")
	}
	runCmd(c.Update(keyDown()))
	msg := runCmd(c.Update(keyEnter()))

	tm, ok := msg.(ConnToggleMsg)
	if !ok || tm.Name != "broker" {
		t.Fatalf("msg = %#v, want ConnToggleMsg{broker}", msg)
	}
	if toggled != "broker" {
		t.Fatalf("OnToggle got %q", toggled)
	}
}

func TestConnStatusNeverMutatesStateItself(t *testing.T) {
	c := newTestConnStatus()
	runCmd(c.Update(keyEnter()))
	runCmd(c.Update(keyEnter())) // toggle row 0

	// Display state only changes when an event arrives.
	if c.Summary().State != conn.StateDisconnected {
		t.Fatal("widget mutated connection state on its own")
	}
}

func TestConnStatusOutsideClickCloses(t *testing.T) {
	c := newTestConnStatus()
	runCmd(c.Update(keyEnter()))
	c.SetPosition(0, 0)

	c.Update(click(60, 30))
	if c.Open() {
		t.Fatal("outside click should close")
	}
}

func TestConnStatusRowClick(t *testing.T) {
	c := newTestConnStatus()
	runCmd(c.Update(keyEnter()))
	c.SetPosition(0, 0)

	// Row 0 at y=2 (trigger 0, border 1).
	msg := runCmd(c.Update(click(5, 2)))
	tm, ok := msg.(ConnToggleMsg)
	if !ok || tm.Name != "cameras" {
		t.Fatalf("msg = %#v, want ConnToggleMsg{cameras}", msg)
	}
}

func TestConnStatusEscCloses(t *testing.T) {
	c := newTestConnStatus()
	runCmd(c.Update(keyEnter()))
	c.Update(keyEsc())
	if c.Open() {
		t.Fatal("esc should close")
	}
}

func TestConnStatusMenuListsStates(t *testing.T) {
	c := newTestConnStatus()
	c.Update(ConnEventMsg{
		Name:  "cameras",
		State: conn.StateConnected,
		Summary: conn.Summary{
			State: conn.StateConnected, Connected: 1, Total: 2,
		},
	})
	runCmd(c.Update(keyEnter()))

	view := c.View()
	if !strings.Contains(view, "cameras") || !strings.Contains(view, "broker") {
		t.Fatal("open menu should list every connection")
	}
	if !strings.Contains(view, "connected") || !strings.Contains(view, "disconnected") {
		t.Fatal("rows should show per-connection states")
	}
}

func TestConnStatusSnapshotReplace(t *testing.T) {
	c := newTestConnStatus()
	c.SetStatuses([]conn.Status{{Name: "solo", State: conn.StateConnected}})
	if c.Summary().Label() != "Connected" {
		t.Fatalf("summary = %q", c.Summary().Label())
	}
}
