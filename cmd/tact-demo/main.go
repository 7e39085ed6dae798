package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calder/tact/config"
	"github.com/calder/tact/conn"
	"github.com/calder/tact/internal/log"
	"github.com/calder/tact/widget"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.Log.File != "" {
		if err := log.SetFileOutput(cfg.Log.File, log.ParseLevel(cfg.Log.Level)); err != nil {
			fmt.Fprintln(os.Stderr, "log error:", err)
			os.Exit(1)
		}
	}

	svc := conn.NewService(cfg.Conn.ConnectDelay, cfg.Conn.Names...)
	defer svc.Close()

	m := newModel(svc)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Forward connection transitions into the Bubble Tea loop.
	go func() {
		for ev := range svc.Events() {
			p.Send(widget.ConnEventMsg(ev))
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ui error:", err)
		os.Exit(1)
	}
}
