package widget

import (
	"strings"
	"testing"

	"github.com/calder/tact/style"
)

func newTestCard() *Card {
	c := NewCard("Record", "Start a new capture session with the current settings.", style.DefaultStyles())
	c.SetWidth(30)
	return c
}

func TestCardPress(t *testing.T) {
	c := newTestCard()
	var pressed bool
	c.OnPress = func() { pressed = true }
	c.Focus()

	msg := runCmd(c.Update(keyEnter()))
	if !pressed {
		t.Fatal("OnPress not fired")
	}
	pm, ok := msg.(PressedMsg)
	if !ok || pm.Name != "Record" {
		t.Fatalf("msg = %#v", msg)
	}
}

func TestCardClickAnywhereInside(t *testing.T) {
	c := newTestCard()
	c.SetPosition(2, 2)
	var pressed bool
	c.OnPress = func() { pressed = true }

	runCmd(c.Update(click(10, 4)))
	if !pressed {
		t.Fatal("click inside card bounds should press")
	}
}

func TestCardDescriptionWraps(t *testing.T) {
	c := newTestCard()
	lines := c.descriptionLines()
	if len(lines) < 2 {
		t.Fatalf("expected wrapped description, got %d line(s)", len(lines))
	}
	for _, l := range lines {
		if len(l) > c.innerWidth() {
			t.Fatalf("line %q exceeds inner width %d", l, c.innerWidth())
		}
	}
}

func TestCardHeightTracksWrapping(t *testing.T) {
	c := newTestCard()
	want := 3 + len(c.descriptionLines())
	if c.Height() != want {
		t.Fatalf("height = %d, want %d", c.Height(), want)
	}
}

func TestCardBadgeRendered(t *testing.T) {
	c := newTestCard()
	c.SetBadge("beta")
	if !strings.Contains(c.View(), "beta") {
		t.Fatal("badge missing from render")
	}
}

func TestCardDisabled(t *testing.T) {
	c := newTestCard()
	c.Focus()
	c.SetDisabled(true)
	c.OnPress = func() { t.Fatal("OnPress fired while disabled") }
	if cmd := c.Update(keyEnter()); cmd != nil {
		t.Fatal("disabled card emitted a command")
	}
}

func TestCardRenderIsCached(t *testing.T) {
	c := newTestCard()
	first := c.View()
	second := c.View()
	if first != second {
		t.Fatal("identical state should render identically")
	}
}
