// Package main provides cartondemo, an interactive showcase of the
// carton resize engine rendered in the terminal.
//
// The demo lays out a configurable horizontal split and wires the
// terminal to the engine the way a browser front end would: mouse
// events feed the drag controller, terminal resizes feed the size
// observer, and the view renders whatever layout the group publishes.
//
// Configuration lives at ~/.config/cartondemo/config.toml (or
// $CARTONDEMO_CONFIG); without one a default three-panel layout is
// used.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	m, err := newModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
