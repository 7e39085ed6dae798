package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TACT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Conn.ConnectDelay != 2*time.Second {
		t.Fatalf("delay = %s, want 2s", c.Conn.ConnectDelay)
	}
	if len(c.Conn.Names) != 3 {
		t.Fatalf("names = %v", c.Conn.Names)
	}
	if c.Log.Level != "info" {
		t.Fatalf("level = %q", c.Log.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[conn]
names = ["front", "side"]
connect_delay = "500ms"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TACT_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Conn.ConnectDelay != 500*time.Millisecond {
		t.Fatalf("delay = %s", c.Conn.ConnectDelay)
	}
	if len(c.Conn.Names) != 2 || c.Conn.Names[0] != "front" {
		t.Fatalf("names = %v", c.Conn.Names)
	}
	if c.Log.Level != "debug" {
		t.Fatalf("level = %q", c.Log.Level)
	}
}

func TestLoadRejectsBadDelay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[conn]\nconnect_delay = \"0s\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TACT_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero delay")
	}
}
