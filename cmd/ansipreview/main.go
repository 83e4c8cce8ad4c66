// Command ansipreview is a small Bubbletea demo that parses a scripted
// ANSI byte stream into a Screen and re-emits it live under whichever
// of the three ANSIEmitter encoding policies the user selects.
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/patrick-goecommerce/ansiscreen/ansicfg"
)

func main() {
	cfg, err := ansicfg.Load()
	if err != nil {
		log.Printf("ansipreview: loading config: %v, using defaults", err)
		cfg = ansicfg.DefaultConfig()
	}

	p := tea.NewProgram(New(cfg))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ansipreview:", err)
		os.Exit(1)
	}
}
